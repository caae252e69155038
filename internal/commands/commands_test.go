package commands

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"niseyomi/internal/chat"
	"niseyomi/internal/reminder"
)

var (
	adminMember  = &discordgo.Member{User: &discordgo.User{ID: "admin"}, Permissions: discordgo.PermissionAdministrator | discordgo.PermissionSendMessages}
	normalMember = &discordgo.Member{User: &discordgo.User{ID: "someone"}, Permissions: discordgo.PermissionSendMessages}
)

func commandInteraction(name string, member *discordgo.Member, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:        "interaction",
		Type:      discordgo.InteractionApplicationCommand,
		GuildID:   "guild",
		ChannelID: "here",
		Member:    member,
		Data: discordgo.ApplicationCommandInteractionData{
			Name:    name,
			Options: opts,
		},
	}}
}

func stringOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: value}
}

func userOpt(id string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: "user", Type: discordgo.ApplicationCommandOptionUser, Value: id}
}

func channelOpt(id string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: "channel", Type: discordgo.ApplicationCommandOptionChannel, Value: id}
}

func content(expected string, ephemeral bool) any {
	return mock.MatchedBy(func(r *discordgo.InteractionResponse) bool {
		return r.Type == discordgo.InteractionResponseChannelMessageWithSource &&
			r.Data.Content == expected &&
			(r.Data.Flags&discordgo.MessageFlagsEphemeral != 0) == ephemeral
	})
}

func newHandlers(client chat.Client, scheduler reminder.Scheduler) *Handlers {
	parser := reminder.NewParser(time.UTC, 0)
	parser.Now = func() time.Time { return time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC) }
	return New(client, parser, reminder.NewService(client, scheduler, func(f func()) { f() }))
}

func TestDefinitions(t *testing.T) {
	defs := Definitions()

	names := make([]string, 0, len(defs))
	for _, d := range defs {
		names = append(names, d.Name)
		switch d.Name {
		case NameDeleteMessages, NameDeleteMessagesAll:
			require.NotNil(t, d.DefaultMemberPermissions, d.Name)
			assert.Equal(t, int64(discordgo.PermissionAdministrator), *d.DefaultMemberPermissions)
		default:
			assert.Nil(t, d.DefaultMemberPermissions, d.Name)
		}
	}
	assert.ElementsMatch(t, []string{NameEvent, NameWebsite, NameDeleteMessages, NameDeleteMessagesAll, NameAbout}, names)
}

func TestAbout(t *testing.T) {
	client := new(chat.MockClient)
	h := newHandlers(client, new(reminder.MockScheduler))
	h.SetSelf(&discordgo.User{ID: "bot", Username: "niseyomi"})

	client.On("InteractionRespond", mock.Anything, mock.MatchedBy(func(r *discordgo.InteractionResponse) bool {
		return len(r.Data.Embeds) == 1 && r.Data.Embeds[0].Footer.Text == "niseyomi | v"+Version
	})).Return(nil).Once()

	h.About(commandInteraction(NameAbout, normalMember))
	client.AssertExpectations(t)
}
