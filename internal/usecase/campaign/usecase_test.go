package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/sukirti-panigrahi/Comeo/internal/domain"
	campaigndto "github.com/sukirti-panigrahi/Comeo/internal/usecase/dto/campaign"
)

type fakeCampaignRepo struct {
	mu        sync.Mutex
	campaigns map[string]*domain.Campaign
}

func newFakeCampaignRepo() *fakeCampaignRepo {
	return &fakeCampaignRepo{campaigns: make(map[string]*domain.Campaign)}
}

func (r *fakeCampaignRepo) CreateCampaign(_ context.Context, campaign *domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *campaign
	r.campaigns[campaign.ID] = &copied
	return nil
}

func (r *fakeCampaignRepo) GetCampaignByID(_ context.Context, campaignID string) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	campaign, ok := r.campaigns[campaignID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *campaign
	return &copied, nil
}

func (r *fakeCampaignRepo) UpdateCampaign(_ context.Context, campaign *domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.campaigns[campaign.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *campaign
	r.campaigns[campaign.ID] = &copied
	return nil
}

func (r *fakeCampaignRepo) DeleteCampaign(_ context.Context, campaignID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.campaigns[campaignID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.campaigns, campaignID)
	return nil
}

func (r *fakeCampaignRepo) ListPublicCampaigns(_ context.Context, page, limit int) ([]*domain.Campaign, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var public []*domain.Campaign
	for _, campaign := range r.campaigns {
		if campaign.State == domain.StatePublic {
			copied := *campaign
			public = append(public, &copied)
		}
	}
	total := int64(len(public))
	start := (page - 1) * limit
	if start >= len(public) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(public) {
		end = len(public)
	}
	return public[start:end], total, nil
}

func (r *fakeCampaignRepo) FindPublicCampaigns(_ context.Context) ([]*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var public []*domain.Campaign
	for _, campaign := range r.campaigns {
		if campaign.State == domain.StatePublic {
			copied := *campaign
			public = append(public, &copied)
		}
	}
	return public, nil
}

func (r *fakeCampaignRepo) FindDueCampaigns(_ context.Context, now time.Time) ([]*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var due []*domain.Campaign
	for _, campaign := range r.campaigns {
		if campaign.State == domain.StatePublic && campaign.DateFinish != nil && !campaign.DateFinish.After(now) {
			copied := *campaign
			due = append(due, &copied)
		}
	}
	return due, nil
}

func (r *fakeCampaignRepo) IncrementViews(_ context.Context, campaignID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	campaign, ok := r.campaigns[campaignID]
	if !ok {
		return domain.ErrNotFound
	}
	campaign.ViewsCount++
	return nil
}

func (r *fakeCampaignRepo) ProcessCampaignUpdate(_ context.Context, campaignID string, fn func(campaign *domain.Campaign) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	campaign, ok := r.campaigns[campaignID]
	if !ok {
		return domain.ErrNotFound
	}
	copied := *campaign
	if err := fn(&copied); err != nil {
		return err
	}
	r.campaigns[campaignID] = &copied
	return nil
}

type fakeTransactionRepo struct {
	mu           sync.Mutex
	transactions map[string]*domain.Transaction
	campaignRepo *fakeCampaignRepo
}

func newFakeTransactionRepo(campaignRepo *fakeCampaignRepo) *fakeTransactionRepo {
	return &fakeTransactionRepo{
		transactions: make(map[string]*domain.Transaction),
		campaignRepo: campaignRepo,
	}
}

func (r *fakeTransactionRepo) CreateTransaction(_ context.Context, trx *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *trx
	r.transactions[trx.ID] = &copied
	return nil
}

func (r *fakeTransactionRepo) GetTransactionByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	trx, ok := r.transactions[transactionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *trx
	return &copied, nil
}

func (r *fakeTransactionRepo) SetExternalID(_ context.Context, transactionID, externalID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	trx, ok := r.transactions[transactionID]
	if !ok {
		return domain.ErrNotFound
	}
	trx.ExternalID = externalID
	return nil
}

func (r *fakeTransactionRepo) ListByCampaignID(_ context.Context, campaignID string) ([]*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var trxs []*domain.Transaction
	for _, trx := range r.transactions {
		if trx.CampaignID == campaignID {
			copied := *trx
			trxs = append(trxs, &copied)
		}
	}
	return trxs, nil
}

func (r *fakeTransactionRepo) CountConfirmedByCampaign(_ context.Context, campaignID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, trx := range r.transactions {
		if trx.CampaignID == campaignID && trx.Confirmed {
			count++
		}
	}
	return count, nil
}

func (r *fakeTransactionRepo) ProcessConfirmation(_ context.Context, transactionID string, fn func(trx *domain.Transaction, campaign *domain.Campaign) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	trx, ok := r.transactions[transactionID]
	if !ok {
		return domain.ErrNotFound
	}
	r.campaignRepo.mu.Lock()
	defer r.campaignRepo.mu.Unlock()
	campaign, ok := r.campaignRepo.campaigns[trx.CampaignID]
	if !ok {
		return domain.ErrNotFound
	}
	trxCopy := *trx
	campaignCopy := *campaign
	if err := fn(&trxCopy, &campaignCopy); err != nil {
		return err
	}
	r.transactions[transactionID] = &trxCopy
	r.campaignRepo.campaigns[campaign.ID] = &campaignCopy
	return nil
}

type fakeScheduler struct {
	mu        sync.Mutex
	scheduled map[string]time.Time
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{scheduled: make(map[string]time.Time)}
}

func (s *fakeScheduler) ScheduleAt(fireAt time.Time, campaignID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduled[campaignID] = fireAt
}

type fakeGateway struct {
	orderErr       error
	submerchantErr error
	orders         []*domain.CreateOrderInput
	submerchants   int
}

func (g *fakeGateway) CreateOrder(_ context.Context, in *domain.CreateOrderInput) (*domain.CreateOrderOutput, error) {
	if g.orderErr != nil {
		return nil, g.orderErr
	}
	g.orders = append(g.orders, in)
	return &domain.CreateOrderOutput{
		OrderID:  "order-123",
		OrderURL: "https://psp.example/pay/order-123",
	}, nil
}

func (g *fakeGateway) CreateSubmerchant(_ context.Context, name, iban string) (string, error) {
	if g.submerchantErr != nil {
		return "", g.submerchantErr
	}
	g.submerchants++
	return "sub-456", nil
}

func newTestCampaignUsecase(t *testing.T) (*DefaultCampaignUsecase, *fakeCampaignRepo, *fakeScheduler, *fakeGateway) {
	t.Helper()
	campaignRepo := newFakeCampaignRepo()
	txRepo := newFakeTransactionRepo(campaignRepo)
	schedulerFake := newFakeScheduler()
	gateway := &fakeGateway{}
	uc := NewDefaultCampaignUsecase(campaignRepo, txRepo, gateway, schedulerFake, nil, nil, false)
	return uc, campaignRepo, schedulerFake, gateway
}

func TestCreateCampaign(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a draft with the owner as editor", func(t *testing.T) {
		uc, repo, _, _ := newTestCampaignUsecase(t)

		out, err := uc.CreateCampaign(ctx, &campaigndto.CreateCampaignInput{
			OwnerID:  "owner-1",
			Headline: "Community garden",
			SumGoal:  1000,
			Duration: 14,
		})
		require.NoError(t, err)
		require.Equal(t, string(domain.StateDraft), out.State)
		require.Equal(t, string(domain.FundUnconditional), out.FundingType)
		require.Nil(t, out.DateStart)

		stored, err := repo.GetCampaignByID(ctx, out.ID)
		require.NoError(t, err)
		require.True(t, stored.IsEditor("owner-1"))
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		uc, _, _, _ := newTestCampaignUsecase(t)

		_, err := uc.CreateCampaign(ctx, &campaigndto.CreateCampaignInput{
			OwnerID:  "owner-1",
			Headline: "",
			SumGoal:  1000,
			Duration: 14,
		})
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("submerchant mode provisions a sub-account", func(t *testing.T) {
		uc, repo, _, gateway := newTestCampaignUsecase(t)
		uc.SubmerchantMode = true

		out, err := uc.CreateCampaign(ctx, &campaigndto.CreateCampaignInput{
			OwnerID:   "owner-1",
			OwnerName: "Jane Doe",
			OwnerIBAN: "NL91ABNA0417164300",
			Headline:  "Community garden",
			SumGoal:   1000,
			Duration:  14,
		})
		require.NoError(t, err)
		require.Equal(t, 1, gateway.submerchants)

		stored, err := repo.GetCampaignByID(ctx, out.ID)
		require.NoError(t, err)
		require.Equal(t, "sub-456", stored.PSPSubmerchantID)
	})

	t.Run("submerchant failure aborts creation", func(t *testing.T) {
		uc, repo, _, gateway := newTestCampaignUsecase(t)
		uc.SubmerchantMode = true
		gateway.submerchantErr = domain.ErrExternalService

		_, err := uc.CreateCampaign(ctx, &campaigndto.CreateCampaignInput{
			OwnerID:  "owner-1",
			Headline: "Community garden",
			SumGoal:  1000,
			Duration: 14,
		})
		require.ErrorIs(t, err, domain.ErrExternalService)
		require.Empty(t, repo.campaigns)
	})
}

func TestUpdateCampaign(t *testing.T) {
	ctx := context.Background()

	seed := func(repo *fakeCampaignRepo, state domain.CampaignState) {
		repo.campaigns["c1"] = &domain.Campaign{
			ID:          "c1",
			OwnerID:     "owner-1",
			EditorIDs:   []string{"owner-1", "editor-1"},
			Headline:    "Old headline",
			SumGoal:     1000,
			Duration:    14,
			State:       state,
			FundingType: domain.FundUnconditional,
		}
	}

	t.Run("editor updates a draft", func(t *testing.T) {
		uc, repo, _, _ := newTestCampaignUsecase(t)
		seed(repo, domain.StateDraft)

		out, err := uc.UpdateCampaign(ctx, &campaigndto.UpdateCampaignInput{
			CampaignID: "c1",
			ActorID:    "editor-1",
			Headline:   "New headline",
			SumGoal:    2000,
			Duration:   20,
		})
		require.NoError(t, err)
		require.Equal(t, "New headline", out.Headline)
		require.Equal(t, int64(2000), out.SumGoal)
	})

	t.Run("non-editor is forbidden", func(t *testing.T) {
		uc, repo, _, _ := newTestCampaignUsecase(t)
		seed(repo, domain.StateDraft)

		_, err := uc.UpdateCampaign(ctx, &campaigndto.UpdateCampaignInput{
			CampaignID: "c1",
			ActorID:    "stranger",
			Headline:   "New headline",
			SumGoal:    2000,
			Duration:   20,
		})
		require.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("published campaign is immutable", func(t *testing.T) {
		uc, repo, _, _ := newTestCampaignUsecase(t)
		seed(repo, domain.StatePublic)

		_, err := uc.UpdateCampaign(ctx, &campaigndto.UpdateCampaignInput{
			CampaignID: "c1",
			ActorID:    "owner-1",
			Headline:   "New headline",
			SumGoal:    2000,
			Duration:   20,
		})
		require.ErrorIs(t, err, domain.ErrInvalidState)
	})
}

func TestDeleteCampaign(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes a draft", func(t *testing.T) {
		uc, repo, _, _ := newTestCampaignUsecase(t)
		repo.campaigns["c1"] = &domain.Campaign{ID: "c1", OwnerID: "owner-1", State: domain.StateDraft}

		require.NoError(t, uc.DeleteCampaign(ctx, "c1", "owner-1"))
		require.Empty(t, repo.campaigns)
	})

	t.Run("only the owner may delete", func(t *testing.T) {
		uc, repo, _, _ := newTestCampaignUsecase(t)
		repo.campaigns["c1"] = &domain.Campaign{
			ID: "c1", OwnerID: "owner-1", EditorIDs: []string{"owner-1", "editor-1"}, State: domain.StateDraft,
		}

		require.ErrorIs(t, uc.DeleteCampaign(ctx, "c1", "editor-1"), domain.ErrForbidden)
	})

	t.Run("published campaign cannot be deleted", func(t *testing.T) {
		uc, repo, _, _ := newTestCampaignUsecase(t)
		repo.campaigns["c1"] = &domain.Campaign{ID: "c1", OwnerID: "owner-1", State: domain.StatePublic}

		require.ErrorIs(t, uc.DeleteCampaign(ctx, "c1", "owner-1"), domain.ErrInvalidState)
	})
}

func TestPublishCampaign(t *testing.T) {
	ctx := context.Background()

	t.Run("publish arms the finish timer", func(t *testing.T) {
		uc, repo, schedulerFake, _ := newTestCampaignUsecase(t)
		repo.campaigns["c1"] = &domain.Campaign{
			ID: "c1", OwnerID: "owner-1", EditorIDs: []string{"owner-1"},
			Headline: "Community garden", SumGoal: 1000, Duration: 10,
			State: domain.StateDraft, FundingType: domain.FundUnconditional,
		}

		out, err := uc.PublishCampaign(ctx, "c1", "owner-1")
		require.NoError(t, err)
		require.Equal(t, string(domain.StatePublic), out.State)
		require.NotNil(t, out.DateStart)
		require.NotNil(t, out.DateFinish)
		require.Equal(t, out.DateStart.Add(10*24*time.Hour), *out.DateFinish)
		require.Equal(t, *out.DateFinish, schedulerFake.scheduled["c1"])
	})

	t.Run("publishing twice fails", func(t *testing.T) {
		uc, repo, _, _ := newTestCampaignUsecase(t)
		repo.campaigns["c1"] = &domain.Campaign{
			ID: "c1", OwnerID: "owner-1", EditorIDs: []string{"owner-1"},
			Headline: "Community garden", SumGoal: 1000, Duration: 10,
			State: domain.StateDraft, FundingType: domain.FundUnconditional,
		}

		_, err := uc.PublishCampaign(ctx, "c1", "owner-1")
		require.NoError(t, err)

		_, err = uc.PublishCampaign(ctx, "c1", "owner-1")
		require.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("non-editor cannot publish", func(t *testing.T) {
		uc, repo, _, _ := newTestCampaignUsecase(t)
		repo.campaigns["c1"] = &domain.Campaign{
			ID: "c1", OwnerID: "owner-1", EditorIDs: []string{"owner-1"},
			State: domain.StateDraft, Duration: 10,
		}

		_, err := uc.PublishCampaign(ctx, "c1", "stranger")
		require.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestForceFinishCampaign(t *testing.T) {
	ctx := context.Background()
	finish := time.Now().Add(-time.Hour)

	t.Run("goal reached finishes successfully and fires the hook", func(t *testing.T) {
		uc, repo, _, _ := newTestCampaignUsecase(t)
		var hooked *domain.Campaign
		uc.FinishHook = func(campaign *domain.Campaign) { hooked = campaign }
		repo.campaigns["c1"] = &domain.Campaign{
			ID: "c1", State: domain.StatePublic, SumGoal: 1000, CollectedSum: 1500, DateFinish: &finish,
		}

		require.NoError(t, uc.ForceFinishCampaign(ctx, "c1"))

		stored, _ := repo.GetCampaignByID(ctx, "c1")
		require.Equal(t, domain.StateFinishedSuccessfully, stored.State)
		require.NotNil(t, hooked)
		require.Equal(t, "c1", hooked.ID)
	})

	t.Run("goal missed finishes unsuccessfully without the hook", func(t *testing.T) {
		uc, repo, _, _ := newTestCampaignUsecase(t)
		hookFired := false
		uc.FinishHook = func(*domain.Campaign) { hookFired = true }
		repo.campaigns["c1"] = &domain.Campaign{
			ID: "c1", State: domain.StatePublic, SumGoal: 1000, CollectedSum: 300, DateFinish: &finish,
		}

		require.NoError(t, uc.ForceFinishCampaign(ctx, "c1"))

		stored, _ := repo.GetCampaignByID(ctx, "c1")
		require.Equal(t, domain.StateFinishedUnsuccessfully, stored.State)
		require.False(t, hookFired)
	})

	t.Run("late firing on a finished campaign is a no-op", func(t *testing.T) {
		uc, repo, _, _ := newTestCampaignUsecase(t)
		repo.campaigns["c1"] = &domain.Campaign{
			ID: "c1", State: domain.StateFinishedSuccessfully, SumGoal: 1000, CollectedSum: 1500,
		}

		require.NoError(t, uc.ForceFinishCampaign(ctx, "c1"))

		stored, _ := repo.GetCampaignByID(ctx, "c1")
		require.Equal(t, domain.StateFinishedSuccessfully, stored.State)
	})

	t.Run("unknown campaign errors", func(t *testing.T) {
		uc, _, _, _ := newTestCampaignUsecase(t)
		require.ErrorIs(t, uc.ForceFinishCampaign(ctx, "missing"), domain.ErrNotFound)
	})
}

func TestFinishDueCampaigns(t *testing.T) {
	ctx := context.Background()
	uc, repo, _, _ := newTestCampaignUsecase(t)

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)
	repo.campaigns["due"] = &domain.Campaign{
		ID: "due", State: domain.StatePublic, SumGoal: 1000, CollectedSum: 100, DateFinish: &past,
	}
	repo.campaigns["running"] = &domain.Campaign{
		ID: "running", State: domain.StatePublic, SumGoal: 1000, CollectedSum: 100, DateFinish: &future,
	}

	require.NoError(t, uc.FinishDueCampaigns(ctx))

	due, _ := repo.GetCampaignByID(ctx, "due")
	require.Equal(t, domain.StateFinishedUnsuccessfully, due.State)

	running, _ := repo.GetCampaignByID(ctx, "running")
	require.Equal(t, domain.StatePublic, running.State)
}

func TestRearmFinishTimers(t *testing.T) {
	ctx := context.Background()
	uc, repo, schedulerFake, _ := newTestCampaignUsecase(t)

	finish := time.Now().Add(time.Hour)
	repo.campaigns["c1"] = &domain.Campaign{ID: "c1", State: domain.StatePublic, DateFinish: &finish}
	repo.campaigns["c2"] = &domain.Campaign{ID: "c2", State: domain.StateDraft}

	require.NoError(t, uc.RearmFinishTimers(ctx))

	require.Contains(t, schedulerFake.scheduled, "c1")
	require.NotContains(t, schedulerFake.scheduled, "c2")
}

func TestGetCampaignDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("drafts are hidden from the public", func(t *testing.T) {
		uc, repo, _, _ := newTestCampaignUsecase(t)
		repo.campaigns["c1"] = &domain.Campaign{ID: "c1", State: domain.StateDraft}

		_, err := uc.GetCampaignDetails(ctx, "c1")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("returns view and backer counters", func(t *testing.T) {
		uc, repo, _, _ := newTestCampaignUsecase(t)
		finish := time.Now().Add(48 * time.Hour)
		repo.campaigns["c1"] = &domain.Campaign{
			ID: "c1", State: domain.StatePublic, SumGoal: 1000, DateFinish: &finish,
		}
		txRepo := uc.TxRepo.(*fakeTransactionRepo)
		txRepo.transactions["t1"] = &domain.Transaction{ID: "t1", CampaignID: "c1", Confirmed: true}
		txRepo.transactions["t2"] = &domain.Transaction{ID: "t2", CampaignID: "c1", Confirmed: false}

		out, err := uc.GetCampaignDetails(ctx, "c1")
		require.NoError(t, err)
		require.Equal(t, int64(1), out.BackersCount)
		require.Equal(t, int64(1), out.ViewsCount)
		require.NotNil(t, out.DaysToFinish)
	})
}

func TestListPublicCampaigns(t *testing.T) {
	ctx := context.Background()
	uc, repo, _, _ := newTestCampaignUsecase(t)

	repo.campaigns["public"] = &domain.Campaign{ID: "public", State: domain.StatePublic}
	repo.campaigns["draft"] = &domain.Campaign{ID: "draft", State: domain.StateDraft}

	out, total, err := uc.ListPublicCampaigns(ctx, 0, -5)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, out, 1)
	require.Equal(t, "public", out[0].ID)
}
