package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"dispatch/config"
	"dispatch/internal/domain/constants"
	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/service"
	"dispatch/internal/errors"
	mockUsecase "dispatch/internal/mocks/usecase"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushFixture struct {
	handler    *PushHandler
	orderUC    *mockUsecase.MockOrderUsecase
	dispatchUC *mockUsecase.MockDispatchUsecase
}

func newPushFixture(t *testing.T, cfg *config.Config, verifier TokenVerifier) *pushFixture {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}
	}

	orderUC := mockUsecase.NewMockOrderUsecase(t)
	dispatchUC := mockUsecase.NewMockDispatchUsecase(t)

	return &pushFixture{
		handler: NewPushHandler(PushHandlerParams{
			Config:     cfg,
			Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
			OrderUC:    orderUC,
			DispatchUC: dispatchUC,
			Verifier:   verifier,
		}),
		orderUC:    orderUC,
		dispatchUC: dispatchUC,
	}
}

func pushRequest(t *testing.T, event *service.OrderEvent) *http.Request {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "1"
	msg.Message.Attributes = map[string]string{"request_id": "req-1"}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func (f *pushFixture) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	_ = f.handler.HandlePush(c)

	return rec
}

func acceptedEvent(orderID uuid.UUID) *service.OrderEvent {
	return &service.OrderEvent{
		OrderID:    orderID.String(),
		Action:     string(entity.ActionMerchantAccept),
		FromStatus: string(entity.OrderStatusPending),
		ToStatus:   string(entity.OrderStatusAcceptedByRestaurant),
	}
}

func TestHandlePush_AssignsAcceptedOrder(t *testing.T) {
	f := newPushFixture(t, nil, nil)
	orderID := uuid.New()
	point := entity.Point{Longitude: 121.56, Latitude: 25.04}

	f.orderUC.EXPECT().GetOrder(mock.Anything, entity.SystemActor(), orderID).Return(&entity.Order{
		ID:            orderID,
		Status:        entity.OrderStatusAcceptedByRestaurant,
		DeliveryPoint: point,
	}, nil)
	f.dispatchUC.EXPECT().AssignNearest(mock.Anything, orderID, point, float64(0)).Return(&entity.Agent{ID: uuid.New()}, nil)

	rec := f.serve(pushRequest(t, acceptedEvent(orderID)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_IgnoresOtherTransitions(t *testing.T) {
	f := newPushFixture(t, nil, nil)

	event := acceptedEvent(uuid.New())
	event.ToStatus = string(entity.OrderStatusPreparing)

	rec := f.serve(pushRequest(t, event))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_SkipsOrdersThatMovedOn(t *testing.T) {
	f := newPushFixture(t, nil, nil)
	orderID := uuid.New()
	agentID := uuid.New()

	f.orderUC.EXPECT().GetOrder(mock.Anything, mock.Anything, orderID).Return(&entity.Order{
		ID:              orderID,
		Status:          entity.OrderStatusAssignedToAgent,
		AssignedAgentID: &agentID,
	}, nil)

	rec := f.serve(pushRequest(t, acceptedEvent(orderID)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_RetryClassification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "infrastructure failure is redelivered", err: errors.New("connection reset"), wantCode: http.StatusServiceUnavailable},
		{name: "domain refusal is acknowledged", err: domainerrors.ErrOrderNotFound, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPushFixture(t, nil, nil)
			orderID := uuid.New()

			f.orderUC.EXPECT().GetOrder(mock.Anything, mock.Anything, orderID).Return(nil, tt.err)

			rec := f.serve(pushRequest(t, acceptedEvent(orderID)))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandlePush_MalformedMessages(t *testing.T) {
	f := newPushFixture(t, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader([]byte(`{"message":{"data":"%%%"}}`)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	assert.Equal(t, http.StatusBadRequest, f.serve(req).Code)

	req = httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader([]byte(`{"message":{"data":"`+
		base64.StdEncoding.EncodeToString([]byte("not json"))+`"}}`)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	assert.Equal(t, http.StatusBadRequest, f.serve(req).Code)
}

func TestHandlePush_VerifiesTokenWhenAudienceIsPinned(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{
		Provider:     constants.PubSubProviderGoogle,
		PushAudience: "https://worker.example.com/push",
	}}

	var gotAudience string
	verifier := func(_ context.Context, token, audience string) error {
		gotAudience = audience
		if token != "good" {
			return errors.New("bad token")
		}

		return nil
	}

	f := newPushFixture(t, cfg, verifier)

	event := acceptedEvent(uuid.New())
	event.ToStatus = string(entity.OrderStatusReady)

	req := pushRequest(t, event)
	assert.Equal(t, http.StatusUnauthorized, f.serve(req).Code)

	req = pushRequest(t, event)
	req.Header.Set(echo.HeaderAuthorization, "Bearer bad")
	assert.Equal(t, http.StatusUnauthorized, f.serve(req).Code)

	req = pushRequest(t, event)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	assert.Equal(t, http.StatusOK, f.serve(req).Code)
	assert.Equal(t, "https://worker.example.com/push", gotAudience)
}

func TestHandleRetry(t *testing.T) {
	f := newPushFixture(t, nil, nil)
	f.dispatchUC.EXPECT().RetryUnassigned(mock.Anything, 0).Return(&usecase.RetryResult{Attempted: 3, Assigned: 2}, nil)

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/dispatch/retry", nil), rec)
	require.NoError(t, f.handler.HandleRetry(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"attempted":3,"assigned":2}`, rec.Body.String())
}
