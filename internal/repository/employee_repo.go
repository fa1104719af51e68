package repository

import (
	"errors"

	"gorm.io/gorm"

	"go-enterprise-ops/internal/model"
)

type EmployeeRepository interface {
	Create(employee *model.Employee) error
	Update(employee *model.Employee) error
	FindActiveByEmail(email string) (*model.Employee, error)
	FindActiveByEmployeeID(employeeID string) (*model.Employee, error)
	FindByEmployeeIDs(employeeIDs []string) ([]model.Employee, error)
	FindActive(offset, limit int) ([]model.Employee, error)
	CountActive() (int64, error)
	ExistsEmployeeID(employeeID string) (bool, error)
	EmailTaken(email, excludeEmployeeID string) (bool, error)
	PhoneTaken(phone, excludeEmployeeID string) (bool, error)
}

type employeeRepo struct {
	db *gorm.DB
}

func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db}
}

// notFoundAsNil maps gorm's not-found to a nil record so callers can tell
// "no document" apart from a storage error.
func notFoundAsNil(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func (r *employeeRepo) Create(employee *model.Employee) error {
	return r.db.Create(employee).Error
}

func (r *employeeRepo) Update(employee *model.Employee) error {
	return r.db.Save(employee).Error
}

func (r *employeeRepo) FindActiveByEmail(email string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.Where("employee_email = ? AND status = ?", email, model.StatusActive).First(&employee).Error
	if err != nil {
		return nil, notFoundAsNil(err)
	}
	return &employee, nil
}

func (r *employeeRepo) FindActiveByEmployeeID(employeeID string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.Where("employee_id = ? AND status = ?", employeeID, model.StatusActive).First(&employee).Error
	if err != nil {
		return nil, notFoundAsNil(err)
	}
	return &employee, nil
}

func (r *employeeRepo) FindByEmployeeIDs(employeeIDs []string) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.Where("employee_id IN ?", employeeIDs).Find(&employees).Error
	return employees, err
}

func (r *employeeRepo) FindActive(offset, limit int) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.Where("status = ?", model.StatusActive).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepo) CountActive() (int64, error) {
	var total int64
	err := r.db.Model(&model.Employee{}).Where("status = ?", model.StatusActive).Count(&total).Error
	return total, err
}

func (r *employeeRepo) ExistsEmployeeID(employeeID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Employee{}).Where("employee_id = ?", employeeID).Count(&count).Error
	return count > 0, err
}

func (r *employeeRepo) EmailTaken(email, excludeEmployeeID string) (bool, error) {
	q := r.db.Model(&model.Employee{}).Where("employee_email = ?", email)
	if excludeEmployeeID != "" {
		q = q.Where("employee_id <> ?", excludeEmployeeID)
	}
	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *employeeRepo) PhoneTaken(phone, excludeEmployeeID string) (bool, error) {
	q := r.db.Model(&model.Employee{}).Where("employee_phone = ?", phone)
	if excludeEmployeeID != "" {
		q = q.Where("employee_id <> ?", excludeEmployeeID)
	}
	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}
