package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorline/dealerdesk-api/internal/domain/entity"
	"github.com/motorline/dealerdesk-api/internal/domain/enum"
	"github.com/motorline/dealerdesk-api/pkg/apperror"
)

type collectionFixture struct {
	svc        *CollectionService
	repo       *fakeCollectionRepo
	customerID uint
	modeID     uint
}

func newCollectionFixture(t *testing.T) *collectionFixture {
	t.Helper()
	ctx := context.Background()

	collRepo := newFakeCollectionRepo()
	custRepo := newFakeCustomerRepo()
	modeRepo := newFakePaymentModeRepo()

	customer := &entity.Customer{CustCode: "CUST001", Name: "Anand", Phone: "9876543210", Status: "active"}
	require.NoError(t, custRepo.Create(ctx, customer))

	mode := &entity.PaymentMode{Name: "Cash", Status: enum.RecordStatusEnabled}
	require.NoError(t, modeRepo.Create(ctx, mode))
	collRepo.modeNames[mode.ID] = mode.Name

	return &collectionFixture{
		svc:        NewCollectionService(collRepo, custRepo, modeRepo),
		repo:       collRepo,
		customerID: customer.ID,
		modeID:     mode.ID,
	}
}

func (f *collectionFixture) create(t *testing.T, amount float64) *entity.PaymentCollection {
	t.Helper()
	c, err := f.svc.CreateCollection(context.Background(), &CreateCollectionInput{
		Amount:        amount,
		CustomerID:    f.customerID,
		PaymentModeID: f.modeID,
	})
	require.NoError(t, err)
	return c
}

func TestCreateCollectionStartsReceiptSequence(t *testing.T) {
	f := newCollectionFixture(t)

	c := f.create(t, 1500)
	assert.Equal(t, "RV0001", c.ReceiptNo)
	assert.False(t, c.Date.IsZero(), "zero input date defaults to now")
}

func TestCreateCollectionContinuesReceiptSequence(t *testing.T) {
	f := newCollectionFixture(t)

	f.create(t, 1000)
	second := f.create(t, 2000)
	assert.Equal(t, "RV0002", second.ReceiptNo)
}

func TestReceiptSequenceSurvivesSoftDelete(t *testing.T) {
	f := newCollectionFixture(t)
	ctx := context.Background()

	first := f.create(t, 1000)
	require.NoError(t, f.svc.DeleteCollection(ctx, first.ID, nil))

	second := f.create(t, 2000)
	assert.Equal(t, "RV0002", second.ReceiptNo, "deleted receipts are never reissued")
}

func TestCreateCollectionAbortsOnCorruptSequence(t *testing.T) {
	f := newCollectionFixture(t)
	ctx := context.Background()

	// Seed a row whose receipt code cannot be parsed.
	require.NoError(t, f.repo.Create(ctx, &entity.PaymentCollection{
		ReceiptNo:     "RVXXXX",
		Date:          time.Now(),
		Amount:        500,
		CustomerID:    f.customerID,
		PaymentModeID: f.modeID,
	}))

	_, err := f.svc.CreateCollection(ctx, &CreateCollectionInput{
		Amount:        1000,
		CustomerID:    f.customerID,
		PaymentModeID: f.modeID,
	})
	require.Error(t, err)
	assert.Equal(t, 500, apperror.GetAppError(err).Code)
	assert.Len(t, f.repo.rows, 1, "no entry is recorded when allocation fails")
}

func TestCreateCollectionValidation(t *testing.T) {
	f := newCollectionFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateCollection(ctx, &CreateCollectionInput{
		Amount:        0,
		CustomerID:    f.customerID,
		PaymentModeID: f.modeID,
	})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)

	_, err = f.svc.CreateCollection(ctx, &CreateCollectionInput{
		Amount:        100,
		CustomerID:    999,
		PaymentModeID: f.modeID,
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)

	_, err = f.svc.CreateCollection(ctx, &CreateCollectionInput{
		Amount:        100,
		CustomerID:    f.customerID,
		PaymentModeID: 999,
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestUpdateCollectionKeepsReceiptAndRejectsDeleted(t *testing.T) {
	f := newCollectionFixture(t)
	ctx := context.Background()

	c := f.create(t, 1000)

	amount := 2500.0
	updated, err := f.svc.UpdateCollection(ctx, &UpdateCollectionInput{ID: c.ID, Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, 2500.0, updated.Amount)
	assert.Equal(t, c.ReceiptNo, updated.ReceiptNo)

	require.NoError(t, f.svc.DeleteCollection(ctx, c.ID, nil))

	_, err = f.svc.UpdateCollection(ctx, &UpdateCollectionInput{ID: c.ID, Amount: &amount})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestDeleteAndRestoreCollection(t *testing.T) {
	f := newCollectionFixture(t)
	ctx := context.Background()

	deletedBy := uint(7)
	c := f.create(t, 1000)

	require.NoError(t, f.svc.DeleteCollection(ctx, c.ID, &deletedBy))

	row, err := f.repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, row.DeletedAt)
	require.NotNil(t, row.DeletedByID)
	assert.Equal(t, deletedBy, *row.DeletedByID)

	err = f.svc.DeleteCollection(ctx, c.ID, &deletedBy)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code, "double delete conflicts")

	deleted, err := f.svc.ListDeletedCollections(ctx)
	require.NoError(t, err)
	require.Len(t, deleted, 1)

	restored, err := f.svc.RestoreCollection(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, restored.DeletedAt)
	assert.Equal(t, c.ReceiptNo, restored.ReceiptNo)

	_, err = f.svc.RestoreCollection(ctx, c.ID)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code, "restoring a live entry conflicts")
}
