package contact

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Vrushabh-003/Personal-Portfolio/internal/httpx"
	"github.com/Vrushabh-003/Personal-Portfolio/internal/middleware"
	"github.com/Vrushabh-003/Personal-Portfolio/internal/transport"
	"github.com/Vrushabh-003/Personal-Portfolio/internal/validation"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Message struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type Request struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type Mailer interface {
	SendContactNotification(ctx context.Context, name, email, message string) (string, error)
}

type Handler struct {
	col      *mongo.Collection
	mailer   Mailer
	val      *validation.Validator
	log      *slog.Logger
	location *time.Location
}

func NewHandler(col *mongo.Collection, mailer Mailer, val *validation.Validator, log *slog.Logger, location *time.Location) *Handler {
	return &Handler{
		col:      col,
		mailer:   mailer,
		val:      val,
		log:      log,
		location: location,
	}
}

// Create stores the submission and then notifies the site owner. The mail
// relay is best effort: a failure is logged but the stored message still
// counts as received.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req Request
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("contact create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("contact create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	msg := Message{
		ID:        primitive.NewObjectID().Hex(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now().In(h.location),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.col.InsertOne(ctx, msg); err != nil {
		log.Error("contact create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "server error", nil)
		return
	}

	if h.mailer != nil {
		if messageID, err := h.mailer.SendContactNotification(ctx, msg.Name, msg.Email, msg.Message); err != nil {
			log.Error("contact create: notification failed", slog.String("error", err.Error()))
		} else {
			log.Info("contact create: notification sent", slog.String("message_id", messageID))
		}
	}

	log.Info("contact create: stored", slog.String("contact_id", msg.ID))
	transport.WriteJSON(w, http.StatusCreated, map[string]string{"message": "message received successfully"})
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
