package chat

import (
	"net/http"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/mock"
)

// MockClient implements Client for tests. Request options are not recorded.
type MockClient struct {
	mock.Mock
}

var _ Client = (*MockClient)(nil)

func (m *MockClient) Channel(channelID string, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	args := m.Called(channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discordgo.Channel), args.Error(1)
}

func (m *MockClient) ChannelMessage(channelID, messageID string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := m.Called(channelID, messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discordgo.Message), args.Error(1)
}

func (m *MockClient) ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, _ ...discordgo.RequestOption) ([]*discordgo.Message, error) {
	args := m.Called(channelID, limit, beforeID, afterID, aroundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*discordgo.Message), args.Error(1)
}

func (m *MockClient) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := m.Called(channelID, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discordgo.Message), args.Error(1)
}

func (m *MockClient) ChannelMessageEditComplex(edit *discordgo.MessageEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := m.Called(edit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discordgo.Message), args.Error(1)
}

func (m *MockClient) ChannelMessageDelete(channelID, messageID string, _ ...discordgo.RequestOption) error {
	args := m.Called(channelID, messageID)
	return args.Error(0)
}

func (m *MockClient) ChannelMessagesBulkDelete(channelID string, messages []string, _ ...discordgo.RequestOption) error {
	args := m.Called(channelID, messages)
	return args.Error(0)
}

func (m *MockClient) GuildChannels(guildID string, _ ...discordgo.RequestOption) ([]*discordgo.Channel, error) {
	args := m.Called(guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*discordgo.Channel), args.Error(1)
}

func (m *MockClient) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	args := m.Called(interaction, resp)
	return args.Error(0)
}

func (m *MockClient) InteractionResponseEdit(interaction *discordgo.Interaction, edit *discordgo.WebhookEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := m.Called(interaction, edit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discordgo.Message), args.Error(1)
}

// RESTError builds a discordgo error with the given HTTP status and API code.
func RESTError(status, code int) error {
	return &discordgo.RESTError{
		Response: &http.Response{StatusCode: status, Status: strconv.Itoa(status) + " " + http.StatusText(status)},
		Message:  &discordgo.APIErrorMessage{Code: code, Message: http.StatusText(status)},
	}
}
