package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorline/dealerdesk-api/pkg/apperror"
)

func newCustomerService(sales, svc stubLedger) (*CustomerService, *fakeCustomerRepo) {
	repo := newFakeCustomerRepo()
	return NewCustomerService(repo, sales, svc), repo
}

func TestCreateCustomerAssignsSequentialCodes(t *testing.T) {
	svc, _ := newCustomerService(stubLedger{}, stubLedger{})
	ctx := context.Background()

	first, err := svc.CreateCustomer(ctx, &CreateCustomerInput{Name: "Anand", Phone: "9876543210"})
	require.NoError(t, err)
	assert.Equal(t, "CUST001", first.CustCode)
	assert.Equal(t, "active", first.Status)

	second, err := svc.CreateCustomer(ctx, &CreateCustomerInput{Name: "Bhavna", Phone: "9876543211"})
	require.NoError(t, err)
	assert.Equal(t, "CUST002", second.CustCode)
}

func TestCreateCustomerValidation(t *testing.T) {
	svc, _ := newCustomerService(stubLedger{}, stubLedger{})
	ctx := context.Background()

	_, err := svc.CreateCustomer(ctx, &CreateCustomerInput{Name: "", Phone: "12345"})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	assert.Len(t, appErr.Errors, 2)

	_, err = svc.CreateCustomer(ctx, &CreateCustomerInput{Name: "Anand", Phone: "98765432101"})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code, "eleven digits must fail")
}

func TestCreateCustomerRejectsDuplicatePhone(t *testing.T) {
	svc, _ := newCustomerService(stubLedger{}, stubLedger{})
	ctx := context.Background()

	_, err := svc.CreateCustomer(ctx, &CreateCustomerInput{Name: "Anand", Phone: "9876543210"})
	require.NoError(t, err)

	_, err = svc.CreateCustomer(ctx, &CreateCustomerInput{Name: "Someone Else", Phone: "9876543210"})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestUpdateCustomerKeepsCode(t *testing.T) {
	svc, _ := newCustomerService(stubLedger{}, stubLedger{})
	ctx := context.Background()

	created, err := svc.CreateCustomer(ctx, &CreateCustomerInput{Name: "Anand", Phone: "9876543210"})
	require.NoError(t, err)

	name := "Anand Kumar"
	updated, err := svc.UpdateCustomer(ctx, &UpdateCustomerInput{ID: created.ID, Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Anand Kumar", updated.Name)
	assert.Equal(t, created.CustCode, updated.CustCode)

	bad := "12"
	_, err = svc.UpdateCustomer(ctx, &UpdateCustomerInput{ID: created.ID, Phone: &bad})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestGetCustomerNotFound(t *testing.T) {
	svc, _ := newCustomerService(stubLedger{}, stubLedger{})

	_, err := svc.GetCustomer(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestDeleteCustomerGuardedByLedgerReferences(t *testing.T) {
	tests := []struct {
		name    string
		sales   stubLedger
		service stubLedger
		wantErr bool
	}{
		{"no references", stubLedger{}, stubLedger{}, false},
		{"sales reference", stubLedger{byCustomer: 2}, stubLedger{}, true},
		{"service reference", stubLedger{}, stubLedger{byCustomer: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newCustomerService(tt.sales, tt.service)
			ctx := context.Background()

			created, err := svc.CreateCustomer(ctx, &CreateCustomerInput{Name: "Anand", Phone: "9876543210"})
			require.NoError(t, err)

			err = svc.DeleteCustomer(ctx, created.ID)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, 409, apperror.GetAppError(err).Code)
				assert.Contains(t, repo.rows, created.ID, "guarded customer must remain")
			} else {
				require.NoError(t, err)
				assert.NotContains(t, repo.rows, created.ID)
			}
		})
	}
}
