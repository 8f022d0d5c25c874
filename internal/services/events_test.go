package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/hbnb/internal/models"
	"github.com/sbilibin2017/hbnb/internal/services"
)

func TestKafkaEventPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockKafkaWriter(ctrl)
	publisher := services.NewKafkaEventPublisher(mockWriter)

	event := models.EntityEvent{
		EventID:   "e1",
		Timestamp: 1700000000,
		Entity:    "places",
		EntityID:  "p1",
		Operation: models.OperationDeleted,
		ActorID:   "u1",
	}

	mockWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, []byte("p1"), msgs[0].Key)

			var got models.EntityEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &got))
			assert.Equal(t, event, got)
			return nil
		})
	publisher.Publish(context.Background(), event)

	// write failures are swallowed
	mockWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
	publisher.Publish(context.Background(), event)
}

func TestKafkaEventPublisher_NilWriter(t *testing.T) {
	assert.NotPanics(t, func() {
		services.NewKafkaEventPublisher(nil).Publish(context.Background(), models.EntityEvent{EventID: "e1"})
	})
}

func TestEvents_OnLinkUsesCompositeID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t)
	ctx := context.Background()
	host := f.user(t, "h@b.com")
	p := f.place(t, host, f.city(t, "FR", "Paris"))
	wifi, err := f.amenitySvc.Create(ctx, admin, services.Fields{"name": "Wifi"})
	require.NoError(t, err)

	mockEvents := services.NewMockEventPublisher(ctrl)
	svc := services.NewPlaceService(f.places, f.users, f.cities, f.amenities, f.links, f.gw, mockEvents)

	mockEvents.EXPECT().Publish(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, e models.EntityEvent) {
			assert.Equal(t, "place_amenities", e.Entity)
			assert.Equal(t, p.ID+":"+wifi.ID, e.EntityID)
			assert.Equal(t, host.ID, e.ActorID)
		})

	_, err = svc.LinkAmenity(ctx, services.Actor{UserID: host.ID}, p.ID, wifi.ID)
	require.NoError(t, err)
}
