// Package commands implements the bot's slash commands and the reminder form.
package commands

import (
	"github.com/bwmarrin/discordgo"

	"niseyomi/internal/chat"
	"niseyomi/internal/log"
	"niseyomi/internal/reminder"
)

// Version is shown in the footer of the about card.
const Version = "2.0.0"

const (
	NameEvent             = "event"
	NameWebsite           = "website"
	NameDeleteMessages    = "delete_messages"
	NameDeleteMessagesAll = "delete_messages_all"
	NameAbout             = "about"
)

// Handler handles one interaction. Handlers run on the bot's event worker.
type Handler func(i *discordgo.InteractionCreate)

// Handlers holds what the command handlers need to answer interactions.
type Handlers struct {
	client    chat.Client
	parser    *reminder.Parser
	reminders *reminder.Service
	sites     map[string]string
	self      *discordgo.User
}

func New(client chat.Client, parser *reminder.Parser, reminders *reminder.Service) *Handlers {
	return &Handlers{
		client:    client,
		parser:    parser,
		reminders: reminders,
		sites:     Websites,
	}
}

// SetSelf records the bot user once the session is ready.
func (h *Handlers) SetSelf(u *discordgo.User) {
	h.self = u
}

// Definitions is the full command set synchronized to every guild.
func Definitions() []*discordgo.ApplicationCommand {
	admin := int64(discordgo.PermissionAdministrator)
	return []*discordgo.ApplicationCommand{
		{
			Name:        NameEvent,
			Description: "Open the reminder form",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionChannel,
					Name:         "channel",
					Description:  "Channel the reminder is posted in",
					ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
					Required:     true,
				},
			},
		},
		{
			Name:        NameWebsite,
			Description: "Show the URL of a registered website",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Website to look up",
					Choices:     websiteChoices(Websites),
					Required:    true,
				},
			},
		},
		{
			Name:                     NameDeleteMessages,
			Description:              "Delete every message of a user in a channel",
			DefaultMemberPermissions: &admin,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "Author of the messages",
					Required:    true,
				},
				{
					Type:         discordgo.ApplicationCommandOptionChannel,
					Name:         "channel",
					Description:  "Channel to clean up",
					ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
					Required:     true,
				},
			},
		},
		{
			Name:                     NameDeleteMessagesAll,
			Description:              "Delete every message of a user in all text channels",
			DefaultMemberPermissions: &admin,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "Author of the messages",
					Required:    true,
				},
			},
		},
		{
			Name:        NameAbout,
			Description: "Show information about the bot",
		},
	}
}

func options(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

func (h *Handlers) respond(i *discordgo.InteractionCreate, data *discordgo.InteractionResponseData) {
	err := h.client.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		log.Warn("failed to respond to interaction", "interaction", i.ID, "channel", i.ChannelID, log.Err(err))
	}
}

func (h *Handlers) reply(i *discordgo.InteractionCreate, content string) {
	h.respond(i, &discordgo.InteractionResponseData{Content: content})
}

func (h *Handlers) replyEphemeral(i *discordgo.InteractionCreate, content string) {
	h.respond(i, &discordgo.InteractionResponseData{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
}
