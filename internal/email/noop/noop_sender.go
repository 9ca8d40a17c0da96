package noop

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
)

type noopSender struct {
	log logrus.FieldLogger
}

// NewNoopSender creates an EmailSender that only logs what it would send.
func NewNoopSender(log logrus.FieldLogger) port.EmailSender {
	return &noopSender{log: log}
}

func (s *noopSender) Send(_ context.Context, msg port.EmailMessage) error {
	s.log.WithFields(logrus.Fields{
		"to":      msg.ToEmail,
		"subject": msg.Subject,
	}).Info("noop email")
	return nil
}
