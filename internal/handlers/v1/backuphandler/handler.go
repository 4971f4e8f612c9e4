package backuphandler

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/backup"
)

// TriggerBackupInput is the Huma input for triggering a backup.
type TriggerBackupInput struct{}

// TriggerBackupResponseBody is the response body for triggering a backup.
type TriggerBackupResponseBody struct {
	Dispatched bool `json:"dispatched" doc:"Whether an upload was started"`
}

// TriggerBackupOutput is the Huma output for triggering a backup.
type TriggerBackupOutput struct {
	Body TriggerBackupResponseBody
}

// backupTrigger dispatches a backup upload without blocking.
type backupTrigger interface {
	Trigger(mode backup.Mode)
}

// Handler handles POST /v1/backup.
type Handler struct {
	Backup backupTrigger
}

// NewHandler creates a new backup Handler.
func NewHandler(svc backupTrigger) *Handler {
	return &Handler{Backup: svc}
}

// Register registers the backup trigger endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "trigger-backup",
		Method:        http.MethodPost,
		Path:          "/v1/backup",
		Summary:       "Trigger backup",
		Description:   "Starts a manual backup upload in the background and returns immediately.",
		Tags:          []string{"Backups"},
		DefaultStatus: http.StatusAccepted,
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, input *TriggerBackupInput) (*TriggerBackupOutput, error) {
	h.Backup.Trigger(backup.ModeManual)
	return &TriggerBackupOutput{Body: TriggerBackupResponseBody{Dispatched: true}}, nil
}
