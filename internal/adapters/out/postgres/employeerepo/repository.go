package employeerepo

import (
	"context"
	"errors"
	"strconv"

	"payroll/internal/core/domain/model/employee"
	"payroll/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormEmployeeRepository implements ports.EmployeeRepository using GORM.
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GORM employee repository.
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// FindAll retrieves all employees ordered by id, which matches insertion
// order because ids are assigned monotonically.
func (r *GormEmployeeRepository) FindAll(ctx context.Context) ([]*employee.Employee, error) {
	var dtos []EmployeeDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	employees := make([]*employee.Employee, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, nil
}

// FindByID retrieves an employee by id.
func (r *GormEmployeeRepository) FindByID(ctx context.Context, id int64) (*employee.Employee, error) {
	var dto EmployeeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("employee", strconv.FormatInt(id, 10))
		}
		return nil, err
	}

	return toDomain(dto)
}

// Save upserts the aggregate. A zero id lets the store assign the next
// value of the primary key sequence; a populated id replaces the stored
// row, creating it if absent.
func (r *GormEmployeeRepository) Save(ctx context.Context, aggregate *employee.Employee) (*employee.Employee, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error; err != nil {
		return nil, err
	}

	if aggregate.ID() == 0 {
		if err := aggregate.SetID(dto.ID); err != nil {
			return nil, err
		}
	}

	return toDomain(dto)
}

// DeleteByID removes the employee with the given id; absent ids are ignored.
func (r *GormEmployeeRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&EmployeeDTO{}, id).Error
}
