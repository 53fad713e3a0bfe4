package mailer

import "errors"

// ErrSendMail ошибка отправки письма
var ErrSendMail = errors.New("mailer: failed to send mail")
