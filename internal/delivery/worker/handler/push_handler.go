package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"dispatch/config"
	deliverycontext "dispatch/internal/delivery/context"
	"dispatch/internal/domain/constants"
	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/service"
	"dispatch/internal/errors"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// TokenVerifier validates the OIDC token attached to a push request.
type TokenVerifier func(ctx context.Context, token, audience string) error

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return "retryable: " + e.err.Error()
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	_, ok := errors.AsType[*retryableError](err)

	return ok
}

// PushHandler consumes order events and dispatches accepted orders that still have no agent.
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	verify         TokenVerifier
	logger         *slog.Logger
	orderUC        usecase.OrderUsecase
	dispatchUC     usecase.DispatchUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	OrderUC    usecase.OrderUsecase
	DispatchUC usecase.DispatchUsecase
	Verifier   TokenVerifier `optional:"true"`
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	pubsubCfg := params.Config.PubSub
	if pubsubCfg == nil {
		pubsubCfg = &config.PubSubConfig{}
	}

	// Google push requests are verified outside develop, or whenever an audience is pinned
	verifyPushAuth := pubsubCfg.PushAudience != "" ||
		(pubsubCfg.Provider == constants.PubSubProviderGoogle && params.Config.Env.Env != constants.EnvDevelop)

	verify := params.Verifier
	if verify == nil {
		verify = verifyGoogleIDToken
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       pubsubCfg.PushAudience,
		verify:         verify,
		logger:         params.Logger,
		orderUC:        params.OrderUC,
		dispatchUC:     params.DispatchUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// 503 asks the broker to redeliver; 200 acknowledges, including messages that can never succeed.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.authorize(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.OrderEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse order event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, h.logger.With(slog.String("request_id", requestID)))
	ctx = deliverycontext.WithLogAttrs(ctx, h.logger,
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("order_id", event.OrderID))
	reqLogger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	reqLogger.Info("[Worker] Processing order event",
		slog.String("action", event.Action),
		slog.String("to_status", event.ToStatus),
	)

	if err := h.processOrderEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process order event",
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// HandleRetry retries every accepted order still waiting for an agent. Meant for a scheduler.
func (h *PushHandler) HandleRetry(c echo.Context) error {
	if h.verifyPushAuth {
		if err := h.authorize(c.Request()); err != nil {
			return c.NoContent(http.StatusUnauthorized)
		}
	}

	result, err := h.dispatchUC.RetryUnassigned(c.Request().Context(), 0)
	if err != nil {
		h.logger.Error("[Worker] Dispatch retry failed", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.OrderEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processOrderEvent assigns an agent when the event leaves an order accepted and unassigned.
// Other events are acknowledged without work.
func (h *PushHandler) processOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	if entity.OrderStatus(event.ToStatus) != entity.OrderStatusAcceptedByRestaurant {
		return nil
	}

	orderID, err := uuid.Parse(event.OrderID)
	if err != nil {
		return errors.Wrap(err, "invalid order id in event")
	}

	order, err := h.orderUC.GetOrder(ctx, entity.SystemActor(), orderID)
	if err != nil {
		return classify(err)
	}

	// a newer transition has already moved the order on
	if order.Status != entity.OrderStatusAcceptedByRestaurant || order.AssignedAgentID != nil {
		return nil
	}

	agent, err := h.dispatchUC.AssignNearest(ctx, orderID, order.DeliveryPoint, 0)
	if err != nil {
		return classify(err)
	}

	if agent == nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] No agent available, order left for retry")
	}

	return nil
}

// classify marks infrastructure failures retryable. Domain refusals will not change on redelivery.
func classify(err error) error {
	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return err
	}

	return newRetryableError(err)
}

func (h *PushHandler) authorize(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = scheme + "://" + req.Host + req.URL.Path
	}

	return h.verify(req.Context(), token, audience)
}

// verifyGoogleIDToken validates a Google-signed push token.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyGoogleIDToken(ctx context.Context, token, audience string) error {
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
