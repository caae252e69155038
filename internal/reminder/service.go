package reminder

import (
	"niseyomi/internal/chat"
	"niseyomi/internal/log"
)

// Service hands reminders to the scheduler and posts them when they fire.
// Firing goes through submit so delivery runs on the bot's event worker.
type Service struct {
	client    chat.Client
	scheduler Scheduler
	submit    func(func())
}

func NewService(client chat.Client, scheduler Scheduler, submit func(func())) *Service {
	return &Service{client: client, scheduler: scheduler, submit: submit}
}

func (s *Service) Schedule(r Reminder) error {
	err := s.scheduler.ScheduleOnce(r.ID, r.FireAt, func() {
		s.submit(func() { s.Deliver(r) })
	})
	if err != nil {
		return err
	}
	log.Info("reminder scheduled", "id", r.ID, "channel", r.ChannelID, "at", r.FireAt)
	return nil
}

// Deliver posts r. A channel that can no longer be resolved drops the
// reminder; nothing is retried.
func (s *Service) Deliver(r Reminder) {
	channel, err := s.client.Channel(r.ChannelID)
	if err != nil {
		log.Warn("reminder channel not found, dropping", "id", r.ID, "channel", r.ChannelID, log.Err(err))
		return
	}
	if _, err := s.client.ChannelMessageSendComplex(channel.ID, r.MessageSend()); err != nil {
		log.Error("failed to send reminder", "id", r.ID, "channel", channel.ID, log.Err(err))
		return
	}
	log.Info("reminder sent", "id", r.ID, "channel", channel.ID)
}
