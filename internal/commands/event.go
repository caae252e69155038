package commands

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"niseyomi/internal/log"
	"niseyomi/internal/reminder"
)

// Event opens the reminder form for the chosen channel.
func (h *Handlers) Event(i *discordgo.InteractionCreate) {
	opt, ok := options(i)["channel"]
	if !ok {
		h.replyEphemeral(i, "Choose a channel.")
		return
	}
	channel := opt.ChannelValue(nil)
	if err := h.client.InteractionRespond(i.Interaction, reminder.Modal(channel.ID)); err != nil {
		log.Warn("failed to open reminder form", "channel", channel.ID, log.Err(err))
	}
}

// SubmitReminder validates a submitted reminder form and schedules it.
// Nothing is scheduled when validation fails.
func (h *Handlers) SubmitReminder(i *discordgo.InteractionCreate) {
	channelID, form, err := reminder.ParseModal(i.ModalSubmitData())
	if err != nil {
		log.Warn("malformed reminder form", "interaction", i.ID, log.Err(err))
		h.replyEphemeral(i, "The reminder form could not be read.")
		return
	}

	if err := form.Validate(); err != nil {
		h.replyEphemeral(i, fmt.Sprintf("The reminder was not scheduled: %v.", err))
		return
	}

	fireAt, err := h.parser.Parse(form.Timestamp)
	switch {
	case errors.Is(err, reminder.ErrInvalidTimestamp):
		h.replyEphemeral(i, fmt.Sprintf("Invalid time %q. Use the format YYYY-MM-DD HH:MM.", form.Timestamp))
		return
	case errors.Is(err, reminder.ErrInPast):
		h.replyEphemeral(i, fmt.Sprintf("%s is already in the past.", form.Timestamp))
		return
	case err != nil:
		h.replyEphemeral(i, "The time could not be understood.")
		return
	}

	r := reminder.New(channelID, form, fireAt)
	if err := h.reminders.Schedule(r); err != nil {
		if errors.Is(err, reminder.ErrInPast) {
			h.replyEphemeral(i, fmt.Sprintf("%s is already in the past.", form.Timestamp))
			return
		}
		log.Error("failed to schedule reminder", "channel", channelID, "at", fireAt, log.Err(err))
		h.replyEphemeral(i, "The reminder could not be scheduled.")
		return
	}

	h.reply(i, fmt.Sprintf("Message: %s\nThe reminder will be sent at <t:%d:F> to <#%s>.", shorten(form.Message, confirmPreviewLength), fireAt.Unix(), channelID))
}

// confirmPreviewLength leaves room in a 2000 character reply for the rest
// of the confirmation.
const confirmPreviewLength = 1800

func shorten(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
