package availability

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AvailabilityController struct {
	Log                 *zap.Logger
	AvailabilityUsecase contracts.AvailabilityUsecase
	Clock               contracts.Clock
	InternalConfig      *config.InternalConfig
}

func NewAvailabilityController(logger *zap.Logger, availabilityUsecase contracts.AvailabilityUsecase, clock contracts.Clock, internalConfig *config.InternalConfig) *AvailabilityController {
	return &AvailabilityController{
		Log:                 logger,
		AvailabilityUsecase: availabilityUsecase,
		Clock:               clock,
		InternalConfig:      internalConfig,
	}
}

func (ctrl *AvailabilityController) requestTimeout() time.Duration {
	return time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
}

func (ctrl *AvailabilityController) GetAvailability(w http.ResponseWriter, r *http.Request) {
	request := requests.Availability{
		ProviderID: chi.URLParam(r, constvars.URLParamProviderID),
		Date:       r.URL.Query().Get(constvars.QueryParamDate),
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	slots, err := ctrl.AvailabilityUsecase.Resolve(ctx, models.AvailabilityQuery{
		ProviderID: request.ProviderID,
		Date:       request.Date,
		Now:        ctrl.Clock.Now(),
	})
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response := responses.Availability{
		ProviderID: request.ProviderID,
		Date:       request.Date,
		Slots:      make([]responses.Slot, 0, len(slots)),
	}
	for _, slot := range slots {
		response.Slots = append(response.Slots, responses.Slot{
			DisplayTime:     slot.DisplayTime,
			StorageTime:     slot.StorageTime,
			DurationMinutes: slot.DurationMinutes,
			IsBookable:      slot.IsBookable,
			IsOccupied:      slot.IsOccupied,
		})
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailabilitySuccessMessage, response)
}
