package ws

import (
	"context"
	"testing"

	"github.com/arthurdotwork/chatroom/internal/domain"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	joined      []string
	rooms       []string
	left        []string
	typing      []string
	stopTyping  []string
	disconnects int
}

func (g *fakeGateway) Join(_ context.Context, userID string, username string, _ domain.Messenger) *domain.Session {
	g.joined = append(g.joined, userID+":"+username)
	return &domain.Session{UserID: userID, Username: username}
}

func (g *fakeGateway) Disconnect(_ context.Context, _ *domain.Session) {
	g.disconnects++
}

func (g *fakeGateway) JoinRoom(_ context.Context, _ *domain.Session, roomID string) {
	g.rooms = append(g.rooms, roomID)
}

func (g *fakeGateway) LeaveRoom(_ context.Context, _ *domain.Session, roomID string) {
	g.left = append(g.left, roomID)
}

func (g *fakeGateway) Typing(_ context.Context, _ *domain.Session, roomID string, receiverID string) {
	g.typing = append(g.typing, roomID+"|"+receiverID)
}

func (g *fakeGateway) StopTyping(_ context.Context, _ *domain.Session, roomID string, receiverID string) {
	g.stopTyping = append(g.stopTyping, roomID+"|"+receiverID)
}

func newTestClient(gateway Gateway) *client {
	return newClient(nil, gateway, Config{SendBuffer: 4})
}

func TestDispatch(t *testing.T) {
	t.Run("it should bind the session on userJoin", func(t *testing.T) {
		gateway := &fakeGateway{}
		c := newTestClient(gateway)

		c.dispatch(context.Background(), []byte(`{"event":"userJoin","data":{"userId":"user-1","username":"alice"}}`))

		require.Equal(t, []string{"user-1:alice"}, gateway.joined)
		require.NotNil(t, c.session)
		require.Equal(t, "user-1", c.session.UserID)
	})

	t.Run("it should ignore a userJoin without a user id", func(t *testing.T) {
		gateway := &fakeGateway{}
		c := newTestClient(gateway)

		c.dispatch(context.Background(), []byte(`{"event":"userJoin","data":{"username":"alice"}}`))

		require.Empty(t, gateway.joined)
		require.Nil(t, c.session)
	})

	t.Run("it should forward room subscriptions", func(t *testing.T) {
		gateway := &fakeGateway{}
		c := newTestClient(gateway)

		c.dispatch(context.Background(), []byte(`{"event":"joinRoom","data":{"roomId":"room-1"}}`))
		c.dispatch(context.Background(), []byte(`{"event":"leaveRoom","data":{"roomId":"room-1"}}`))

		require.Equal(t, []string{"room-1"}, gateway.rooms)
		require.Equal(t, []string{"room-1"}, gateway.left)
	})

	t.Run("it should forward typing indicators", func(t *testing.T) {
		gateway := &fakeGateway{}
		c := newTestClient(gateway)

		c.dispatch(context.Background(), []byte(`{"event":"typing","data":{"roomId":"room-1"}}`))
		c.dispatch(context.Background(), []byte(`{"event":"stopTyping","data":{"receiverId":"user-2"}}`))

		require.Equal(t, []string{"room-1|"}, gateway.typing)
		require.Equal(t, []string{"|user-2"}, gateway.stopTyping)
	})

	t.Run("it should ignore malformed frames", func(t *testing.T) {
		gateway := &fakeGateway{}
		c := newTestClient(gateway)

		c.dispatch(context.Background(), []byte(`not json`))
		c.dispatch(context.Background(), []byte(`{"event":"unknown","data":{}}`))

		require.Empty(t, gateway.joined)
		require.Empty(t, gateway.rooms)
	})
}

func TestSend(t *testing.T) {
	t.Run("it should queue events as json envelopes", func(t *testing.T) {
		c := newTestClient(&fakeGateway{})

		err := c.Send(context.Background(), domain.Event{
			Name:    domain.EventUserOnline,
			Payload: domain.PresencePayload{UserID: "user-1", Username: "alice"},
		})
		require.NoError(t, err)

		payload := <-c.send
		require.JSONEq(t, `{"event":"userOnline","data":{"userId":"user-1","username":"alice"}}`, string(payload))
	})

	t.Run("it should drop events when the buffer is full", func(t *testing.T) {
		c := newClient(nil, &fakeGateway{}, Config{SendBuffer: 1})

		require.NoError(t, c.Send(context.Background(), domain.Event{Name: domain.EventUserOnline}))
		require.Error(t, c.Send(context.Background(), domain.Event{Name: domain.EventUserOnline}))
	})

	t.Run("it should refuse to send after close", func(t *testing.T) {
		c := newTestClient(&fakeGateway{})

		require.NoError(t, c.Close(context.Background()))

		for i := 0; i < 100; i++ {
			require.Error(t, c.Send(context.Background(), domain.Event{Name: domain.EventUserOnline}))
		}
		require.Empty(t, c.send)
	})
}
