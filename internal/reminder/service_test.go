package reminder

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"niseyomi/internal/chat"
)

func inline(f func()) { f() }

func sampleReminder() Reminder {
	return New("chan", Form{
		Message: "@everyone raid night",
		Detail:  "phase 2",
		Window:  "21:00~23:00",
	}, time.Date(2030, 1, 1, 1, 0, 0, 0, time.UTC))
}

func TestNewReminder(t *testing.T) {
	r := sampleReminder()
	assert.Regexp(t, `^rem_[0-9A-Z]{26}$`, r.ID)
	assert.NotEqual(t, r.ID, sampleReminder().ID)
	assert.Equal(t, "chan", r.ChannelID)
}

func TestMessageSend(t *testing.T) {
	send := sampleReminder().MessageSend()

	assert.Equal(t, "Reminder: @everyone raid night", send.Content)
	require.Len(t, send.Embeds, 1)
	embed := send.Embeds[0]
	assert.Equal(t, Title, embed.Title)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "phase 2", embed.Fields[0].Value)
	assert.Equal(t, "21:00~23:00", embed.Fields[1].Value)
	require.NotNil(t, send.AllowedMentions)
	assert.Contains(t, send.AllowedMentions.Parse, discordgo.AllowedMentionTypeEveryone)
}

func TestScheduleRegistersJobThatDelivers(t *testing.T) {
	client := new(chat.MockClient)
	scheduler := new(MockScheduler)
	r := sampleReminder()

	var task func()
	scheduler.On("ScheduleOnce", r.ID, r.FireAt, mock.Anything).
		Run(func(args mock.Arguments) { task = args.Get(2).(func()) }).
		Return(nil).Once()

	var submitted int
	svc := NewService(client, scheduler, func(f func()) {
		submitted++
		f()
	})
	require.NoError(t, svc.Schedule(r))
	require.NotNil(t, task)
	client.AssertNotCalled(t, "Channel", "chan")

	client.On("Channel", "chan").Return(&discordgo.Channel{ID: "chan"}, nil).Once()
	client.On("ChannelMessageSendComplex", "chan", mock.MatchedBy(func(m *discordgo.MessageSend) bool {
		return m.Content == "Reminder: @everyone raid night"
	})).Return(&discordgo.Message{ID: "posted"}, nil).Once()

	task()

	assert.Equal(t, 1, submitted)
	client.AssertExpectations(t)
	scheduler.AssertExpectations(t)
}

func TestScheduleError(t *testing.T) {
	scheduler := new(MockScheduler)
	scheduler.On("ScheduleOnce", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("scheduler stopped"))

	svc := NewService(new(chat.MockClient), scheduler, inline)
	assert.EqualError(t, svc.Schedule(sampleReminder()), "scheduler stopped")
}

func TestDeliverDropsWhenChannelGone(t *testing.T) {
	client := new(chat.MockClient)
	client.On("Channel", "chan").Return(nil, chat.RESTError(http.StatusNotFound, discordgo.ErrCodeUnknownChannel))

	NewService(client, new(MockScheduler), inline).Deliver(sampleReminder())

	client.AssertNumberOfCalls(t, "ChannelMessageSendComplex", 0)
}

func TestDeliverSendFailureIsLogged(t *testing.T) {
	client := new(chat.MockClient)
	client.On("Channel", "chan").Return(&discordgo.Channel{ID: "chan"}, nil)
	client.On("ChannelMessageSendComplex", "chan", mock.Anything).Return(nil, errors.New("503")).Once()

	NewService(client, new(MockScheduler), inline).Deliver(sampleReminder())

	client.AssertExpectations(t)
}
