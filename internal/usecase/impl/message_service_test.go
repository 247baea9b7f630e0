package impl

import (
	"context"
	"testing"
	"time"

	"agrox/internal/domain/entity"
	domainerrors "agrox/internal/domain/errors"
	"agrox/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (env *testEnv) messageService() usecase.MessageUsecase {
	return NewMessageService(MessageServiceParams{
		MessageRepo: env.messages,
		RequestRepo: env.requests,
		UserRepo:    env.users,
		Resolver:    env.resolver(),
		IDGen:       env.ids,
		Clock:       env.clock,
		Logger:      env.logger,
	})
}

func TestMessageService_SendAndOpen(t *testing.T) {
	env := newTestEnv(t)
	svc := env.messageService()
	ctx := context.Background()
	farmer := env.addUser(t, testFarmer, "Fay Farmer", entity.RoleFarmer)
	buyer := env.addUser(t, testBuyer, "Bea Buyer", entity.RoleBuyer)

	_, err := svc.Send(ctx, buyer, testFarmer, "  Is the crop ready?  ")
	require.NoError(t, err)
	env.clock.Advance(time.Minute)
	_, err = svc.Send(ctx, buyer, testFarmer, "Any update?")
	require.NoError(t, err)
	env.clock.Advance(time.Minute)
	_, err = svc.Send(ctx, farmer, testBuyer, "Next week")
	require.NoError(t, err)

	unread, err := svc.UnreadCount(ctx, farmer)
	require.NoError(t, err)
	assert.Equal(t, 2, unread)

	thread, err := svc.Open(ctx, farmer, testBuyer)
	require.NoError(t, err)
	require.Len(t, thread, 3)
	assert.Equal(t, "Is the crop ready?", thread[0].Content)
	assert.Equal(t, "Next week", thread[2].Content)
	assert.True(t, thread[0].Read)
	assert.False(t, thread[2].Read)

	unread, err = svc.UnreadCount(ctx, farmer)
	require.NoError(t, err)
	assert.Equal(t, 0, unread)

	unread, err = svc.UnreadCount(ctx, buyer)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)
}

func TestMessageService_SendErrors(t *testing.T) {
	env := newTestEnv(t)
	svc := env.messageService()
	ctx := context.Background()
	buyer := env.addUser(t, testBuyer, "Bea Buyer", entity.RoleBuyer)

	_, err := svc.Send(ctx, buyer, testFarmer, "hello")
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	_, err = svc.Send(ctx, buyer, testBuyer, "   ")
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.Send(ctx, nil, testBuyer, "hello")
	require.ErrorIs(t, err, domainerrors.ErrNotLoggedIn)
}

func TestMessageService_Conversations(t *testing.T) {
	env := newTestEnv(t)
	svc := env.messageService()
	requests := env.requestService(env.notificationService())
	ctx := context.Background()

	farmer := env.addUser(t, testFarmer, "Fay Farmer", entity.RoleFarmer)
	buyer := env.addUser(t, testBuyer, "Bea Buyer", entity.RoleBuyer)
	env.addUser(t, "seller@example.com", "Sol Seller", entity.RoleSeller)
	listing := env.addListing(t, "1", "Fresh Organic Tomatoes", testFarmer, 2.5, 500)

	// an approved request opens a conversation without any message
	request, err := requests.Create(ctx, buyer, &usecase.CreateRequestInput{ListingID: listing.ID, Quantity: 5})
	require.NoError(t, err)
	_, err = requests.Approve(ctx, farmer, request.ID)
	require.NoError(t, err)

	pending, err := requests.Create(ctx, buyer, &usecase.CreateRequestInput{ListingID: listing.ID, Quantity: 1})
	require.NoError(t, err)
	require.Equal(t, entity.RequestPending, pending.Status)

	env.clock.Advance(time.Minute)
	_, err = svc.Send(ctx, &entity.Session{User: &entity.User{Email: "seller@example.com"}}, testBuyer, "Need seeds?")
	require.NoError(t, err)

	conversations, err := svc.Conversations(ctx, buyer)
	require.NoError(t, err)
	require.Len(t, conversations, 2)

	assert.Equal(t, "seller@example.com", conversations[0].OtherUser)
	assert.Equal(t, "Sol Seller", conversations[0].OtherName)
	assert.Equal(t, 1, conversations[0].UnreadCount)
	require.NotNil(t, conversations[0].LastMessage)
	assert.Equal(t, "Need seeds?", conversations[0].LastMessage.Content)

	assert.Equal(t, testFarmer, conversations[1].OtherUser)
	assert.Equal(t, "Fay Farmer", conversations[1].OtherName)
	assert.Equal(t, entity.ConversationKey(testBuyer, testFarmer), conversations[1].ID)
	require.NotNil(t, conversations[1].Listing)
	assert.Equal(t, listing.ID, conversations[1].Listing.ID)
	assert.Nil(t, conversations[1].LastMessage)

	// the farmer sees the buyer once, from the approved request
	farmerConversations, err := svc.Conversations(ctx, farmer)
	require.NoError(t, err)
	require.Len(t, farmerConversations, 1)
	assert.Equal(t, testBuyer, farmerConversations[0].OtherUser)
}
