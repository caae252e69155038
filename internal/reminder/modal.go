package reminder

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
)

// ModalPrefix starts the custom id of every reminder form; the target
// channel id follows it.
const ModalPrefix = "event_modal:"

const (
	fieldMessage   = "message"
	fieldDetail    = "detail"
	fieldWindow    = "window"
	fieldTimestamp = "timestamp"
)

// Longest accepted answers. The message becomes the post content after the
// "Reminder: " prefix; detail and window become embed field values.
const (
	MaxMessageLength   = 1990
	MaxFieldLength     = 1024
	maxTimestampLength = 32
)

var (
	ErrMalformedModal = errors.New("malformed reminder form")
	ErrTooLong        = errors.New("reminder form answer is too long")
)

// Form holds the four free-text answers of the reminder modal.
type Form struct {
	Message   string
	Detail    string
	Window    string
	Timestamp string
}

// Modal is the interaction response that opens the reminder form for channelID.
func Modal(channelID string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: ModalPrefix + channelID,
			Title:    "Schedule a reminder",
			Components: []discordgo.MessageComponent{
				textRow(fieldMessage, "Message (mentions allowed)", "Fixed activity on MM/DD @here @everyone", discordgo.TextInputParagraph, MaxMessageLength),
				textRow(fieldDetail, "Activity details", "Goal, phase, ...", discordgo.TextInputParagraph, MaxFieldLength),
				textRow(fieldWindow, "Time window", "hh:mm~hh:mm", discordgo.TextInputShort, MaxFieldLength),
				textRow(fieldTimestamp, "Send at (exact format)", "YYYY-MM-DD HH:MM", discordgo.TextInputShort, maxTimestampLength),
			},
		},
	}
}

func textRow(id, label, placeholder string, style discordgo.TextInputStyle, maxLength int) discordgo.ActionsRow {
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.TextInput{
			CustomID:    id,
			Label:       label,
			Placeholder: placeholder,
			Style:       style,
			Required:    true,
			MaxLength:   maxLength,
		},
	}}
}

// Validate rejects answers Discord would refuse to post when the reminder fires.
func (f Form) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{fieldMessage, f.Message, MaxMessageLength},
		{fieldDetail, f.Detail, MaxFieldLength},
		{fieldWindow, f.Window, MaxFieldLength},
	}
	for _, fld := range fields {
		if n := utf8.RuneCountInString(fld.value); n > fld.max {
			return fmt.Errorf("%w: %s has %d characters, at most %d allowed", ErrTooLong, fld.name, n, fld.max)
		}
	}
	return nil
}

// ParseModal extracts the target channel and the answers from a submitted form.
func ParseModal(data discordgo.ModalSubmitInteractionData) (string, Form, error) {
	channelID, ok := strings.CutPrefix(data.CustomID, ModalPrefix)
	if !ok || channelID == "" {
		return "", Form{}, ErrMalformedModal
	}

	values := make(map[string]string, 4)
	for _, c := range data.Components {
		for _, input := range rowInputs(c) {
			values[input.CustomID] = input.Value
		}
	}

	form := Form{
		Message:   values[fieldMessage],
		Detail:    values[fieldDetail],
		Window:    values[fieldWindow],
		Timestamp: values[fieldTimestamp],
	}
	if form.Timestamp == "" {
		return "", Form{}, ErrMalformedModal
	}
	return channelID, form, nil
}

// rowInputs accepts both decoded (pointer) and constructed (value) components.
func rowInputs(c discordgo.MessageComponent) []discordgo.TextInput {
	var children []discordgo.MessageComponent
	switch row := c.(type) {
	case *discordgo.ActionsRow:
		children = row.Components
	case discordgo.ActionsRow:
		children = row.Components
	default:
		return nil
	}

	var inputs []discordgo.TextInput
	for _, child := range children {
		switch in := child.(type) {
		case *discordgo.TextInput:
			inputs = append(inputs, *in)
		case discordgo.TextInput:
			inputs = append(inputs, in)
		}
	}
	return inputs
}
