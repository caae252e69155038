package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"niseyomi/internal/chat"
	"niseyomi/internal/reminder"
)

func TestLookupWebsite(t *testing.T) {
	tests := []struct {
		key   string
		want  string
		found bool
	}{
		{"FF14Lodestone", "FF14Lodestone: https://jp.finalfantasyxiv.com/lodestone/", true},
		{"FFLogs", "FFLogs: https://ja.fflogs.com/", true},
		{"Nope", `"Nope" is not registered.`, false},
		{"ff14lodestone", `"ff14lodestone" is not registered.`, false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, found := LookupWebsite(Websites, tt.key)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.found, found)
		})
	}
}

func TestWebsiteChoicesAreSorted(t *testing.T) {
	choices := websiteChoices(Websites)
	assert.Len(t, choices, len(Websites))
	for i := 1; i < len(choices); i++ {
		assert.Less(t, choices[i-1].Name, choices[i].Name)
	}
}

func TestWebsiteCommand(t *testing.T) {
	t.Run("known key", func(t *testing.T) {
		client := new(chat.MockClient)
		client.On("InteractionRespond", mock.Anything, content("FF14Lodestone: https://jp.finalfantasyxiv.com/lodestone/", false)).Return(nil).Once()

		newHandlers(client, new(reminder.MockScheduler)).Website(commandInteraction(NameWebsite, normalMember, stringOpt("name", "FF14Lodestone")))
		client.AssertExpectations(t)
	})

	t.Run("unknown key", func(t *testing.T) {
		client := new(chat.MockClient)
		client.On("InteractionRespond", mock.Anything, content(`"Mystery" is not registered.`, true)).Return(nil).Once()

		newHandlers(client, new(reminder.MockScheduler)).Website(commandInteraction(NameWebsite, normalMember, stringOpt("name", "Mystery")))
		client.AssertExpectations(t)
	})
}
