// Package reminder schedules one-shot announcement posts.
package reminder

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/oklog/ulid/v2"
)

const (
	Title      = "Scheduled activity"
	AuthorName = "Schedule notice"
	Color      = 0xfee75c
)

// Reminder is handed to the scheduler and forgotten once it fires.
type Reminder struct {
	ID        string
	ChannelID string
	Message   string
	Detail    string
	Window    string
	FireAt    time.Time
}

func New(channelID string, form Form, fireAt time.Time) Reminder {
	return Reminder{
		ID:        "rem_" + ulid.Make().String(),
		ChannelID: channelID,
		Message:   form.Message,
		Detail:    form.Detail,
		Window:    form.Window,
		FireAt:    fireAt,
	}
}

// MessageSend is the post made when the reminder fires. @everyone and @here
// typed into the message are honored.
func (r Reminder) MessageSend() *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Content: fmt.Sprintf("Reminder: %s", r.Message),
		Embeds: []*discordgo.MessageEmbed{{
			Title:  Title,
			Color:  Color,
			Author: &discordgo.MessageEmbedAuthor{Name: AuthorName},
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Details", Value: r.Detail},
				{Name: "Time window", Value: r.Window},
			},
		}},
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Parse: []discordgo.AllowedMentionType{
				discordgo.AllowedMentionTypeEveryone,
				discordgo.AllowedMentionTypeRoles,
				discordgo.AllowedMentionTypeUsers,
			},
		},
	}
}
