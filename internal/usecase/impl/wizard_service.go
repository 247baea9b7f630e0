package impl

import (
	"context"
	"log/slog"

	"agrox/config"
	deliverycontext "agrox/internal/delivery/context"
	"agrox/internal/domain/entity"
	domainerrors "agrox/internal/domain/errors"
	"agrox/internal/domain/repository"
	"agrox/internal/domain/service"
	"agrox/internal/domain/wizard"
	"agrox/internal/errors"
	"agrox/internal/usecase"

	"go.uber.org/fx"
)

type wizardService struct {
	listingRepo repository.ListingRepository
	sessionRepo repository.SessionRepository
	idGen       service.IDGenerator
	clock       service.Clock
	opts        []wizard.Option
	logger      *slog.Logger
}

// WizardServiceParams holds dependencies for WizardService, injected by Fx.
type WizardServiceParams struct {
	fx.In

	ListingRepo repository.ListingRepository
	SessionRepo repository.SessionRepository
	IDGen       service.IDGenerator
	Clock       service.Clock
	Config      *config.Config
	Logger      *slog.Logger
}

// NewWizardService is the constructor for wizardService.
func NewWizardService(params WizardServiceParams) usecase.WizardUsecase {
	srv := &wizardService{
		listingRepo: params.ListingRepo,
		sessionRepo: params.SessionRepo,
		idGen:       params.IDGen,
		clock:       params.Clock,
		logger:      params.Logger,
	}
	if cfg := params.Config; cfg != nil && cfg.Wizard != nil {
		srv.opts = append(srv.opts, wizard.WithDescriptionLimit(cfg.Wizard.PreviewDescriptionLimit))
	}

	return srv
}

func (srv *wizardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Begin consumes the pending edit mark. A mark pointing at a deleted listing
// starts an empty wizard.
func (srv *wizardService) Begin(ctx context.Context, sess *entity.Session) (*usecase.WizardView, error) {
	if err := requireRole(sess, entity.RoleFarmer, entity.RoleSeller); err != nil {
		return nil, err
	}

	editID, err := srv.sessionRepo.ConsumeEditListingID(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read edit mark")
	}
	if editID == "" {
		return view(wizard.New(srv.opts...), nil), nil
	}

	listing, err := srv.listingRepo.FindByID(ctx, editID)
	if errors.Is(err, domainerrors.ErrListingNotFound) {
		srv.log(ctx).Warn("Listing marked for edit no longer exists", slog.String("listing_id", editID))

		return view(wizard.New(srv.opts...), nil), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find listing")
	}
	if !listing.OwnedBy(sess.Email()) {
		return nil, domainerrors.ErrForbidden
	}

	return view(wizard.NewForEdit(listing, srv.opts...), nil), nil
}

// restore rebuilds the wizard, loading the edited listing when there is one.
func (srv *wizardService) restore(ctx context.Context, state wizard.State) (*wizard.Wizard, *entity.Listing, error) {
	var original *entity.Listing
	if state.EditingID != "" {
		listing, err := srv.listingRepo.FindByID(ctx, state.EditingID)
		switch {
		case errors.Is(err, domainerrors.ErrListingNotFound):
			// deleted meanwhile, submit creates a new listing
		case err != nil:
			return nil, nil, errors.Wrap(err, "failed to find listing")
		default:
			original = listing
		}
	}

	return wizard.Restore(state, original, srv.opts...), original, nil
}

func (srv *wizardService) Validate(ctx context.Context, state wizard.State, step wizard.Step) ([]string, error) {
	w, _, err := srv.restore(ctx, state)
	if err != nil {
		return nil, err
	}

	return w.Validate(step), nil
}

func (srv *wizardService) Next(ctx context.Context, state wizard.State) (*usecase.WizardView, error) {
	w, _, err := srv.restore(ctx, state)
	if err != nil {
		return nil, err
	}
	messages := w.Next()

	return view(w, messages), nil
}

func (srv *wizardService) Prev(ctx context.Context, state wizard.State) (*usecase.WizardView, error) {
	w, _, err := srv.restore(ctx, state)
	if err != nil {
		return nil, err
	}
	w.Prev()

	return view(w, nil), nil
}

func (srv *wizardService) Preview(ctx context.Context, state wizard.State) (*usecase.WizardView, error) {
	w, _, err := srv.restore(ctx, state)
	if err != nil {
		return nil, err
	}

	return view(w, nil), nil
}

// Submit re-validates every step and stores the listing owned by the session user.
func (srv *wizardService) Submit(ctx context.Context, sess *entity.Session, state wizard.State) (*entity.Listing, error) {
	if err := requireRole(sess, entity.RoleFarmer, entity.RoleSeller); err != nil {
		return nil, err
	}

	w, original, err := srv.restore(ctx, state)
	if err != nil {
		return nil, err
	}
	if original != nil && !original.OwnedBy(sess.Email()) {
		return nil, domainerrors.ErrForbidden
	}

	listing, messages := w.Submit(wizard.SubmitInput{
		Owner: sess.Email(),
		ID:    srv.idGen.NewID(),
		Now:   srv.clock.Now(),
	})
	if len(messages) > 0 {
		return nil, domainerrors.NewValidationError(messages)
	}
	if err := srv.listingRepo.Save(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to save listing")
	}

	srv.log(ctx).Info("Listing submitted",
		slog.String("listing_id", listing.ID),
		slog.Bool("edited", w.Editing()),
	)

	return listing, nil
}

func view(w *wizard.Wizard, messages []string) *usecase.WizardView {
	if messages == nil {
		messages = []string{}
	}

	return &usecase.WizardView{
		State:   w.State(),
		Step:    w.CurrentStep().String(),
		Preview: w.Preview(),
		Errors:  messages,
	}
}
