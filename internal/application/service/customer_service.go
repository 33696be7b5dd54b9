package service

import (
	"context"
	"regexp"

	"github.com/motorline/dealerdesk-api/internal/domain/entity"
	"github.com/motorline/dealerdesk-api/internal/domain/repository"
	"github.com/motorline/dealerdesk-api/pkg/apperror"
	"github.com/motorline/dealerdesk-api/pkg/pagination"
	"github.com/motorline/dealerdesk-api/pkg/sequence"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// CustomerService handles customer registry operations
type CustomerService struct {
	customerRepo  repository.CustomerRepository
	salesLedger   repository.LedgerRefCounts
	serviceLedger repository.LedgerRefCounts
	codes         sequence.Allocator
}

// NewCustomerService creates a new customer service. The two ledger
// interfaces back the referential delete guard.
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	salesLedger repository.LedgerRefCounts,
	serviceLedger repository.LedgerRefCounts,
) *CustomerService {
	return &CustomerService{
		customerRepo:  customerRepo,
		salesLedger:   salesLedger,
		serviceLedger: serviceLedger,
		codes:         sequence.NewAllocator("CUST", 3),
	}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name    string
	Phone   string
	Address *string
}

// CreateCustomer creates a customer with the next sequential CUST code
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	if err := validateCustomer(input.Name, input.Phone); err != nil {
		return nil, err
	}

	existing, err := s.customerRepo.GetByPhone(ctx, input.Phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A customer with this phone number already exists")
	}

	maxID, err := s.customerRepo.MaxID(ctx)
	if err != nil {
		return nil, err
	}

	customer := &entity.Customer{
		CustCode: s.codes.NextFromID(maxID),
		Name:     input.Name,
		Phone:    input.Phone,
		Address:  input.Address,
		Status:   "active",
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uint) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// GetCustomerByPhone retrieves a customer by exact phone number
func (s *CustomerService) GetCustomerByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with pagination and optional search
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	ID      uint
	Name    *string
	Phone   *string
	Address *string
	Status  *string
}

// UpdateCustomer updates a customer. The cust_code never changes.
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		if !phonePattern.MatchString(*input.Phone) {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "phone", Message: "Phone must be exactly 10 digits"},
			})
		}
		customer.Phone = *input.Phone
	}
	if input.Address != nil {
		customer.Address = input.Address
	}
	if input.Status != nil {
		customer.Status = *input.Status
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer deletes a customer unless ledger entries reference it
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uint) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	salesCount, err := s.salesLedger.CountByCustomer(ctx, id)
	if err != nil {
		return err
	}
	serviceCount, err := s.serviceLedger.CountByCustomer(ctx, id)
	if err != nil {
		return err
	}
	if salesCount > 0 || serviceCount > 0 {
		return apperror.NewConflictError("Customer has payment collections and cannot be deleted")
	}

	return s.customerRepo.Delete(ctx, id)
}

func validateCustomer(name, phone string) error {
	var fieldErrors []apperror.FieldError
	if name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if !phonePattern.MatchString(phone) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "phone", Message: "Phone must be exactly 10 digits"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}
