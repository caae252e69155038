package bot

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"niseyomi/internal/log"
)

const statusInterval = 60 * time.Second

var statuses = []string{
	"for message links",
	"for x.com links",
	"for /event",
}

type presence interface {
	UpdateStatusComplex(usd discordgo.UpdateStatusData) error
}

// rotateStatus cycles the watching activity until stop is closed.
func rotateStatus(s presence, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	idx := 0
	updateStatus(s, statuses[idx])
	for {
		select {
		case <-ticker.C:
			idx = (idx + 1) % len(statuses)
			updateStatus(s, statuses[idx])
		case <-stop:
			return
		}
	}
}

func updateStatus(s presence, text string) {
	err := s.UpdateStatusComplex(discordgo.UpdateStatusData{
		Activities: []*discordgo.Activity{{Name: text, Type: discordgo.ActivityTypeWatching}},
	})
	if err != nil {
		log.Debug("failed to update status", "status", text, log.Err(err))
	}
}
