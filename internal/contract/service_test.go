// AngelaMos | 2026
// service_test.go

package contract

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/gigbook/internal/authz"
	"github.com/angelamos/gigbook/internal/core"
)

type fakeRepository struct {
	contracts map[string]*Contract
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{contracts: make(map[string]*Contract)}
}

func (f *fakeRepository) Create(_ context.Context, contract *Contract) error {
	contract.CreatedAt = time.Now()
	contract.UpdatedAt = contract.CreatedAt
	clone := *contract
	f.contracts[contract.ID] = &clone
	return nil
}

func (f *fakeRepository) GetByID(
	_ context.Context,
	id string,
) (*Contract, error) {
	contract, ok := f.contracts[id]
	if !ok {
		return nil, fmt.Errorf("get contract: %w", core.ErrNotFound)
	}
	clone := *contract
	return &clone, nil
}

func (f *fakeRepository) Update(_ context.Context, contract *Contract) error {
	stored, ok := f.contracts[contract.ID]
	if !ok || stored.Disabled {
		return fmt.Errorf("update contract: %w", core.ErrNotFound)
	}
	contract.UpdatedAt = time.Now()
	clone := *contract
	f.contracts[contract.ID] = &clone
	return nil
}

func (f *fakeRepository) Disable(
	_ context.Context,
	id string,
	at time.Time,
) error {
	contract, ok := f.contracts[id]
	if !ok {
		return fmt.Errorf("disable contract: %w", core.ErrNotFound)
	}
	if contract.Disabled {
		return fmt.Errorf("disable contract: %w", ErrContractDisabled)
	}
	contract.Disabled = true
	contract.DisabledAt = &at
	return nil
}

func (f *fakeRepository) ListByOfferor(
	_ context.Context,
	offerorID string,
) ([]Contract, error) {
	var out []Contract
	for _, c := range f.contracts {
		if c.OfferorID == offerorID {
			out = append(out, *c)
		}
	}
	return out, nil
}

type fakeProfileLookup struct {
	owners map[string]string
}

func (f *fakeProfileLookup) OwnerOf(
	_ context.Context,
	profileID string,
) (string, error) {
	owner, ok := f.owners[profileID]
	if !ok {
		return "", fmt.Errorf("get profile: %w", core.ErrNotFound)
	}
	return owner, nil
}

const offereeProfileID = "9f0d5c3a-1111-4222-8333-444455556666"

func newTestService() *Service {
	return NewService(newFakeRepository(), &fakeProfileLookup{
		owners: map[string]string{offereeProfileID: "performer"},
	})
}

func createReq() CreateContractRequest {
	return CreateContractRequest{
		Name:           "Summer festival booking",
		OffereeID:      offereeProfileID,
		TotalFee:       decimal.NewFromInt(5000),
		CurrencyCode:   "USD",
		UponSigning:    30,
		UponCompletion: 70,
		PaymentMethod:  "bank transfer",
	}
}

func TestCreateStampsOfferor(t *testing.T) {
	svc := newTestService()

	contract, err := svc.Create(
		context.Background(),
		authz.Actor{UserID: "manager"},
		createReq(),
	)
	require.NoError(t, err)

	assert.Equal(t, "manager", contract.OfferorID)
	assert.False(t, contract.Disabled)
	assert.Nil(t, contract.DisabledAt)
}

func TestCreateRejectsUnknownOfferee(t *testing.T) {
	svc := newTestService()

	req := createReq()
	req.OffereeID = "00000000-0000-4000-8000-000000000000"

	_, err := svc.Create(
		context.Background(),
		authz.Actor{UserID: "manager"},
		req,
	)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestGetAllowsBothParties(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, authz.Actor{UserID: "manager"}, createReq())
	require.NoError(t, err)

	_, err = svc.Get(ctx, authz.Actor{UserID: "manager"}, created.ID)
	assert.NoError(t, err)

	// The offeree profile's owner also has read standing.
	_, err = svc.Get(ctx, authz.Actor{UserID: "performer"}, created.ID)
	assert.NoError(t, err)

	_, err = svc.Get(ctx, authz.Actor{UserID: "stranger"}, created.ID)
	assert.ErrorIs(t, err, core.ErrForbidden)
}

func TestUpdateOfferorOnly(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, authz.Actor{UserID: "manager"}, createReq())
	require.NoError(t, err)

	newName := "Autumn festival booking"
	_, err = svc.Update(ctx, authz.Actor{UserID: "performer"}, created.ID,
		UpdateContractRequest{Name: &newName})
	assert.ErrorIs(t, err, core.ErrForbidden,
		"the offeree side can read but never modify")

	updated, err := svc.Update(ctx, authz.Actor{UserID: "manager"}, created.ID,
		UpdateContractRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Autumn festival booking", updated.Name)
}

func TestUpdatePartialMerge(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, authz.Actor{UserID: "manager"}, createReq())
	require.NoError(t, err)

	currency := "EUR"
	updated, err := svc.Update(ctx, authz.Actor{UserID: "manager"}, created.ID,
		UpdateContractRequest{CurrencyCode: &currency})
	require.NoError(t, err)

	assert.Equal(t, "EUR", updated.CurrencyCode)
	assert.Equal(t, created.Name, updated.Name)
	assert.True(t, created.TotalFee.Equal(updated.TotalFee))
	assert.Equal(t, created.UponSigning, updated.UponSigning)
}

func TestUpdateExplicitNullClearsExpenses(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	travel := decimal.NewFromInt(300)
	req := createReq()
	req.TravelExpenses = &travel

	created, err := svc.Create(ctx, authz.Actor{UserID: "manager"}, req)
	require.NoError(t, err)
	require.NotNil(t, created.TravelExpenses)

	updated, err := svc.Update(ctx, authz.Actor{UserID: "manager"}, created.ID,
		UpdateContractRequest{
			TravelExpenses: core.Null[decimal.Decimal](),
		})
	require.NoError(t, err)
	assert.Nil(t, updated.TravelExpenses)
}

func TestDisableIsTerminal(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	manager := authz.Actor{UserID: "manager"}

	created, err := svc.Create(ctx, manager, createReq())
	require.NoError(t, err)

	resp, err := svc.Disable(ctx, manager, created.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, created.Name, resp.Name)
	assert.WithinDuration(t, time.Now(), resp.DisabledAt, time.Minute)

	// The row survives and stays readable.
	got, err := svc.Get(ctx, manager, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Disabled)
	require.NotNil(t, got.DisabledAt)

	// Updates are rejected once disabled; there is no way back.
	newName := "should not apply"
	_, err = svc.Update(ctx, manager, created.ID,
		UpdateContractRequest{Name: &newName})
	assert.ErrorIs(t, err, ErrContractDisabled)

	_, err = svc.Disable(ctx, manager, created.ID, nil)
	assert.ErrorIs(t, err, ErrContractDisabled)
}

func TestDisableOfferorOnly(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(
		ctx,
		authz.Actor{UserID: "manager"},
		createReq(),
	)
	require.NoError(t, err)

	_, err = svc.Disable(ctx, authz.Actor{UserID: "performer"}, created.ID, nil)
	assert.ErrorIs(t, err, core.ErrForbidden)
}

func TestDisableExplicitTimestamp(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	manager := authz.Actor{UserID: "manager"}

	created, err := svc.Create(ctx, manager, createReq())
	require.NoError(t, err)

	at := time.Date(2026, 10, 27, 16, 0, 0, 0, time.UTC)
	resp, err := svc.Disable(ctx, manager, created.ID, &at)
	require.NoError(t, err)
	assert.True(t, resp.DisabledAt.Equal(at))
}

func TestContractInfo(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(
		ctx,
		authz.Actor{UserID: "manager"},
		createReq(),
	)
	require.NoError(t, err)

	offeror, offereeOwner, disabled, err := svc.ContractInfo(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "manager", offeror)
	assert.Equal(t, "performer", offereeOwner)
	assert.False(t, disabled)
}
