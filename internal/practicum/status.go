package practicum

import "fmt"

// verdicts maps each known status to its user-facing text. Adding a status
// means adding a row here — nothing else changes.
var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// ParseStatus turns one homework record into the notification text.
func ParseStatus(h Homework) (string, error) {
	if h.HomeworkName == "" {
		return "", errMissingField("homework_name")
	}
	if h.Status == "" {
		return "", errMissingField("status")
	}
	verdict, ok := verdicts[Status(h.Status)]
	if !ok {
		return "", errUnknownStatus(h.Status)
	}
	return fmt.Sprintf("Изменился статус проверки работы %q. %s", h.HomeworkName, verdict), nil
}
