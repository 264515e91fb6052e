package response

import "fmt"

// Client-facing message catalog. The wording is part of the API contract,
// so the format strings stay exactly as consumers already expect them.
const (
	msgRecordFound    = "The %s has been found successfully"
	msgRecordCreated  = "The %s has been created successfully"
	msgRecordUpdated  = "The %s with id '%s' has been updated successfully"
	msgRecordDeleted  = "The %s with id '%s' has been deleted successfully"
	msgRecordNotFound = "The %s with id '%s' has not been found"
	msgInvalidPayload = "The %s payload is not valid"

	// MsgInternalError is the only message that reaches clients on a 500;
	// the underlying error goes to the log, never to the wire.
	MsgInternalError = "An error occurred during your request, please try again"
)

func RecordFound(resource string) string {
	return fmt.Sprintf(msgRecordFound, resource)
}

func RecordCreated(resource string) string {
	return fmt.Sprintf(msgRecordCreated, resource)
}

func RecordUpdated(resource, id string) string {
	return fmt.Sprintf(msgRecordUpdated, resource, id)
}

func RecordDeleted(resource, id string) string {
	return fmt.Sprintf(msgRecordDeleted, resource, id)
}

func RecordNotFound(resource, id string) string {
	return fmt.Sprintf(msgRecordNotFound, resource, id)
}

func InvalidPayload(resource string) string {
	return fmt.Sprintf(msgInvalidPayload, resource)
}
