// Package gateway adapts the auth, intake and user-requests services to
// API Gateway proxy events: one handler per deployed function, each parsing
// the event payload, talking to its service and answering with JSON plus
// CORS headers.
package gateway

import (
	"encoding/json"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
)

type errorBody struct {
	Error   string `json:"error"`
	ErrorID string `json:"errorId,omitempty"`
}

// preflight answers an OPTIONS request with an empty body and the full CORS
// header set for the given methods.
func preflight(methods string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: 200,
		Headers: map[string]string{
			"Access-Control-Allow-Origin":  "*",
			"Access-Control-Allow-Methods": methods,
			"Access-Control-Allow-Headers": "Content-Type, Authorization",
		},
		Body: "",
	}
}

// respond marshals body into the standard JSON+CORS response shape
func respond(status int, body any) events.APIGatewayProxyResponse {
	payload, err := json.Marshal(body)
	if err != nil {
		log.Printf("ERROR: failed to marshal response body: %v", err)
		status = 500
		payload = []byte(`{"error":"internal server error"}`)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(payload),
	}
}

// serverError renders a 500. The detailed error is always logged under a
// correlation id and echoed into the body only in debug mode.
func serverError(debug bool, err error) events.APIGatewayProxyResponse {
	errID := uuid.NewString()
	log.Printf("ERROR [%s]: %v", errID, err)

	if debug {
		return respond(500, errorBody{Error: err.Error(), ErrorID: errID})
	}
	return respond(500, errorBody{Error: "internal server error", ErrorID: errID})
}
