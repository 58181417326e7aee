// AngelaMos | 2026
// service_test.go

package event

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/gigbook/internal/authz"
	"github.com/angelamos/gigbook/internal/core"
)

type fakeRepository struct {
	events map[string]*Event
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{events: make(map[string]*Event)}
}

func (f *fakeRepository) Create(_ context.Context, event *Event) error {
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	clone := *event
	f.events[event.ID] = &clone
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, fmt.Errorf("get event: %w", core.ErrNotFound)
	}
	clone := *event
	return &clone, nil
}

func (f *fakeRepository) Update(_ context.Context, event *Event) error {
	if _, ok := f.events[event.ID]; !ok {
		return fmt.Errorf("update event: %w", core.ErrNotFound)
	}
	event.UpdatedAt = time.Now()
	clone := *event
	f.events[event.ID] = &clone
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.events[id]; !ok {
		return fmt.Errorf("delete event: %w", core.ErrNotFound)
	}
	delete(f.events, id)
	return nil
}

func (f *fakeRepository) IDsByContract(
	_ context.Context,
	contractID string,
) ([]string, error) {
	var ids []string
	for _, e := range f.events {
		if e.ContractID == contractID {
			ids = append(ids, e.ID)
		}
	}
	return ids, nil
}

type contractInfo struct {
	offerorID      string
	offereeOwnerID string
	disabled       bool
}

type fakeContractLookup struct {
	contracts map[string]contractInfo
}

func (f *fakeContractLookup) ContractInfo(
	_ context.Context,
	contractID string,
) (string, string, bool, error) {
	info, ok := f.contracts[contractID]
	if !ok {
		return "", "", false, fmt.Errorf("get contract: %w", core.ErrNotFound)
	}
	return info.offerorID, info.offereeOwnerID, info.disabled, nil
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

type fakeAccommodationLookup struct {
	known map[string]bool
}

func (f *fakeAccommodationLookup) Exists(
	_ context.Context,
	id string,
) (bool, error) {
	return f.known[id], nil
}

const (
	contractID       = "11111111-aaaa-4bbb-8ccc-000000000001"
	offerorProfileID = "11111111-aaaa-4bbb-8ccc-000000000002"
	offereeProfileID = "11111111-aaaa-4bbb-8ccc-000000000003"
	accommodationID  = "11111111-aaaa-4bbb-8ccc-000000000004"
)

func newTestService() (*Service, *fakeContractLookup) {
	contracts := &fakeContractLookup{contracts: map[string]contractInfo{
		contractID: {offerorID: "manager", offereeOwnerID: "performer"},
	}}

	svc := NewService(
		newFakeRepository(),
		contracts,
		&fakeProfileLookup{owners: map[string]string{
			offerorProfileID: "manager",
			offereeProfileID: "performer",
		}},
		&fakeAccommodationLookup{known: map[string]bool{
			accommodationID: true,
		}},
	)

	return svc, contracts
}

func createReq() CreateEventRequest {
	start := TimeOfDay{Hour: 21}
	end := TimeOfDay{Hour: 22, Minute: 30}
	return CreateEventRequest{
		Name:                "Main stage set",
		ContractID:          contractID,
		OfferorProfileID:    offerorProfileID,
		OffereeProfileID:    offereeProfileID,
		Date:                Today(),
		Duration:            Duration{Duration: 90 * time.Minute},
		Start:               &start,
		End:                 &end,
		MealLocationName:    "Backstage canteen",
		MealLocationAddress: "1 Festival Way",
	}
}

func TestCreateEvent(t *testing.T) {
	svc, _ := newTestService()

	event, err := svc.Create(
		context.Background(),
		authz.Actor{UserID: "manager"},
		createReq(),
	)
	require.NoError(t, err)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, contractID, event.ContractID)
}

func TestCreateIssuerOnly(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	// The performer side can read events but never schedule them.
	_, err := svc.Create(ctx, authz.Actor{UserID: "performer"}, createReq())
	assert.ErrorIs(t, err, core.ErrForbidden)

	_, err = svc.Create(ctx, authz.Actor{}, createReq())
	assert.ErrorIs(t, err, core.ErrUnauthorized)
}

func TestCreateDateBoundary(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	manager := authz.Actor{UserID: "manager"}

	yesterday := time.Now().AddDate(0, 0, -1)
	req := createReq()
	req.Date = NewDate(yesterday.Year(), yesterday.Month(), yesterday.Day())

	_, err := svc.Create(ctx, manager, req)
	assert.ErrorIs(t, err, core.ErrInvalidInput,
		"a date before today must be rejected")

	// Today itself is the valid boundary.
	req.Date = Today()
	_, err = svc.Create(ctx, manager, req)
	assert.NoError(t, err)
}

func TestCreateDurationBoundary(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	manager := authz.Actor{UserID: "manager"}

	req := createReq()
	req.Duration = Duration{}

	_, err := svc.Create(ctx, manager, req)
	assert.ErrorIs(t, err, core.ErrInvalidInput,
		"a zero duration must be rejected")

	// One second is the smallest valid duration.
	req.Duration = Duration{Duration: time.Second}
	_, err = svc.Create(ctx, manager, req)
	assert.NoError(t, err)
}

func TestCreateRequiresStartAndEnd(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	manager := authz.Actor{UserID: "manager"}

	req := createReq()
	req.Start = nil
	_, err := svc.Create(ctx, manager, req)
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	req = createReq()
	req.End = nil
	_, err = svc.Create(ctx, manager, req)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestCreateRejectsDanglingReferences(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	manager := authz.Actor{UserID: "manager"}

	req := createReq()
	req.OffereeProfileID = "11111111-aaaa-4bbb-8ccc-0000000000ff"
	_, err := svc.Create(ctx, manager, req)
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	unknown := "11111111-aaaa-4bbb-8ccc-0000000000fe"
	req = createReq()
	req.AccommodationID = &unknown
	_, err = svc.Create(ctx, manager, req)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestCreateRejectsDisabledContract(t *testing.T) {
	svc, contracts := newTestService()

	info := contracts.contracts[contractID]
	info.disabled = true
	contracts.contracts[contractID] = info

	_, err := svc.Create(
		context.Background(),
		authz.Actor{UserID: "manager"},
		createReq(),
	)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestGetAllowsBothParties(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, authz.Actor{UserID: "manager"}, createReq())
	require.NoError(t, err)

	_, err = svc.Get(ctx, authz.Actor{UserID: "manager"}, created.ID)
	assert.NoError(t, err)

	_, err = svc.Get(ctx, authz.Actor{UserID: "performer"}, created.ID)
	assert.NoError(t, err)

	_, err = svc.Get(ctx, authz.Actor{UserID: "stranger"}, created.ID)
	assert.ErrorIs(t, err, core.ErrForbidden)
}

func TestUpdateIssuerOnly(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, authz.Actor{UserID: "manager"}, createReq())
	require.NoError(t, err)

	newName := "Acoustic set"
	_, err = svc.Update(ctx, authz.Actor{UserID: "performer"}, created.ID,
		UpdateEventRequest{Name: &newName})
	assert.ErrorIs(t, err, core.ErrForbidden)

	updated, err := svc.Update(ctx, authz.Actor{UserID: "manager"}, created.ID,
		UpdateEventRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Acoustic set", updated.Name)
}

func TestUpdatePartialMerge(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	manager := authz.Actor{UserID: "manager"}

	created, err := svc.Create(ctx, manager, createReq())
	require.NoError(t, err)

	start := TimeOfDay{Hour: 20}
	updated, err := svc.Update(ctx, manager, created.ID,
		UpdateEventRequest{Start: &start})
	require.NoError(t, err)

	assert.Equal(t, start, updated.Start)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.End, updated.End)
	assert.Equal(t, created.Duration, updated.Duration)
}

func TestUpdateNullClearsAccommodation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	manager := authz.Actor{UserID: "manager"}

	id := accommodationID
	req := createReq()
	req.AccommodationID = &id

	created, err := svc.Create(ctx, manager, req)
	require.NoError(t, err)
	require.NotNil(t, created.AccommodationID)

	updated, err := svc.Update(ctx, manager, created.ID,
		UpdateEventRequest{AccommodationID: core.Null[string]()})
	require.NoError(t, err)
	assert.Nil(t, updated.AccommodationID)
}

func TestUpdateRejectsPastDate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	manager := authz.Actor{UserID: "manager"}

	created, err := svc.Create(ctx, manager, createReq())
	require.NoError(t, err)

	yesterday := time.Now().AddDate(0, 0, -1)
	past := NewDate(yesterday.Year(), yesterday.Month(), yesterday.Day())
	_, err = svc.Update(ctx, manager, created.ID,
		UpdateEventRequest{Date: &past})
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestUpdateReparentsContract(t *testing.T) {
	svc, contracts := newTestService()
	ctx := context.Background()
	manager := authz.Actor{UserID: "manager"}

	otherContractID := "11111111-aaaa-4bbb-8ccc-000000000099"
	contracts.contracts[otherContractID] = contractInfo{
		offerorID:      "other-manager",
		offereeOwnerID: "performer",
	}

	created, err := svc.Create(ctx, manager, createReq())
	require.NoError(t, err)

	// The actor must be the issuer of the target contract too.
	_, err = svc.Update(ctx, manager, created.ID,
		UpdateEventRequest{ContractID: &otherContractID})
	assert.ErrorIs(t, err, core.ErrForbidden)

	info := contracts.contracts[otherContractID]
	info.offerorID = "manager"
	contracts.contracts[otherContractID] = info

	updated, err := svc.Update(ctx, manager, created.ID,
		UpdateEventRequest{ContractID: &otherContractID})
	require.NoError(t, err)
	assert.Equal(t, otherContractID, updated.ContractID)

	missing := "11111111-aaaa-4bbb-8ccc-0000000000aa"
	_, err = svc.Update(ctx, manager, created.ID,
		UpdateEventRequest{ContractID: &missing})
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestDeleteIssuerOnly(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	manager := authz.Actor{UserID: "manager"}

	created, err := svc.Create(ctx, manager, createReq())
	require.NoError(t, err)

	err = svc.Delete(ctx, authz.Actor{UserID: "performer"}, created.ID)
	assert.ErrorIs(t, err, core.ErrForbidden)

	require.NoError(t, svc.Delete(ctx, manager, created.ID))

	_, err = svc.Get(ctx, manager, created.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestRefsByContract(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	manager := authz.Actor{UserID: "manager"}

	first, err := svc.Create(ctx, manager, createReq())
	require.NoError(t, err)
	second, err := svc.Create(ctx, manager, createReq())
	require.NoError(t, err)

	ids, err := svc.RefsByContract(ctx, contractID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{first.ID, second.ID}, ids)
}
