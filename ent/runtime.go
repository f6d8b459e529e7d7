// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/diagen/ent/chatmessage"
	"github.com/abhisek/diagen/ent/chatsession"
	"github.com/abhisek/diagen/ent/diagramfeedback"
	"github.com/abhisek/diagen/ent/diagramstate"
	"github.com/abhisek/diagen/ent/llmrequestevent"
	"github.com/abhisek/diagen/ent/schema"
	"github.com/abhisek/diagen/ent/userpreference"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescTimestamp is the schema descriptor for timestamp field.
	chatmessageDescTimestamp := chatmessageFields[3].Descriptor()
	// chatmessage.DefaultTimestamp holds the default value on creation for the timestamp field.
	chatmessage.DefaultTimestamp = chatmessageDescTimestamp.Default.(func() time.Time)
	chatsessionFields := schema.ChatSession{}.Fields()
	_ = chatsessionFields
	// chatsessionDescOriginalPrompt is the schema descriptor for original_prompt field.
	chatsessionDescOriginalPrompt := chatsessionFields[1].Descriptor()
	// chatsession.DefaultOriginalPrompt holds the default value on creation for the original_prompt field.
	chatsession.DefaultOriginalPrompt = chatsessionDescOriginalPrompt.Default.(string)
	// chatsessionDescCreatedAt is the schema descriptor for created_at field.
	chatsessionDescCreatedAt := chatsessionFields[2].Descriptor()
	// chatsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatsession.DefaultCreatedAt = chatsessionDescCreatedAt.Default.(func() time.Time)
	// chatsessionDescLastActivity is the schema descriptor for last_activity field.
	chatsessionDescLastActivity := chatsessionFields[3].Descriptor()
	// chatsession.DefaultLastActivity holds the default value on creation for the last_activity field.
	chatsession.DefaultLastActivity = chatsessionDescLastActivity.Default.(func() time.Time)
	diagramfeedbackFields := schema.DiagramFeedback{}.Fields()
	_ = diagramfeedbackFields
	// diagramfeedbackDescSessionID is the schema descriptor for session_id field.
	diagramfeedbackDescSessionID := diagramfeedbackFields[1].Descriptor()
	// diagramfeedback.DefaultSessionID holds the default value on creation for the session_id field.
	diagramfeedback.DefaultSessionID = diagramfeedbackDescSessionID.Default.(string)
	// diagramfeedbackDescUserIdentifier is the schema descriptor for user_identifier field.
	diagramfeedbackDescUserIdentifier := diagramfeedbackFields[2].Descriptor()
	// diagramfeedback.DefaultUserIdentifier holds the default value on creation for the user_identifier field.
	diagramfeedback.DefaultUserIdentifier = diagramfeedbackDescUserIdentifier.Default.(string)
	// diagramfeedbackDescUserPrompt is the schema descriptor for user_prompt field.
	diagramfeedbackDescUserPrompt := diagramfeedbackFields[5].Descriptor()
	// diagramfeedback.DefaultUserPrompt holds the default value on creation for the user_prompt field.
	diagramfeedback.DefaultUserPrompt = diagramfeedbackDescUserPrompt.Default.(string)
	// diagramfeedbackDescRating is the schema descriptor for rating field.
	diagramfeedbackDescRating := diagramfeedbackFields[6].Descriptor()
	// diagramfeedback.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	diagramfeedback.RatingValidator = diagramfeedbackDescRating.Validators[0].(func(int) error)
	// diagramfeedbackDescComment is the schema descriptor for comment field.
	diagramfeedbackDescComment := diagramfeedbackFields[8].Descriptor()
	// diagramfeedback.DefaultComment holds the default value on creation for the comment field.
	diagramfeedback.DefaultComment = diagramfeedbackDescComment.Default.(string)
	// diagramfeedbackDescImprovementSuggestions is the schema descriptor for improvement_suggestions field.
	diagramfeedbackDescImprovementSuggestions := diagramfeedbackFields[9].Descriptor()
	// diagramfeedback.DefaultImprovementSuggestions holds the default value on creation for the improvement_suggestions field.
	diagramfeedback.DefaultImprovementSuggestions = diagramfeedbackDescImprovementSuggestions.Default.(string)
	// diagramfeedbackDescCreatedAt is the schema descriptor for created_at field.
	diagramfeedbackDescCreatedAt := diagramfeedbackFields[10].Descriptor()
	// diagramfeedback.DefaultCreatedAt holds the default value on creation for the created_at field.
	diagramfeedback.DefaultCreatedAt = diagramfeedbackDescCreatedAt.Default.(func() time.Time)
	diagramstateFields := schema.DiagramState{}.Fields()
	_ = diagramstateFields
	// diagramstateDescVersion is the schema descriptor for version field.
	diagramstateDescVersion := diagramstateFields[3].Descriptor()
	// diagramstate.DefaultVersion holds the default value on creation for the version field.
	diagramstate.DefaultVersion = diagramstateDescVersion.Default.(int)
	// diagramstateDescLastUpdated is the schema descriptor for last_updated field.
	diagramstateDescLastUpdated := diagramstateFields[4].Descriptor()
	// diagramstate.DefaultLastUpdated holds the default value on creation for the last_updated field.
	diagramstate.DefaultLastUpdated = diagramstateDescLastUpdated.Default.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	userpreferenceFields := schema.UserPreference{}.Fields()
	_ = userpreferenceFields
	// userpreferenceDescPreferredDetailLevel is the schema descriptor for preferred_detail_level field.
	userpreferenceDescPreferredDetailLevel := userpreferenceFields[1].Descriptor()
	// userpreference.DefaultPreferredDetailLevel holds the default value on creation for the preferred_detail_level field.
	userpreference.DefaultPreferredDetailLevel = userpreferenceDescPreferredDetailLevel.Default.(string)
	// userpreferenceDescFeedbackCount is the schema descriptor for feedback_count field.
	userpreferenceDescFeedbackCount := userpreferenceFields[5].Descriptor()
	// userpreference.DefaultFeedbackCount holds the default value on creation for the feedback_count field.
	userpreference.DefaultFeedbackCount = userpreferenceDescFeedbackCount.Default.(int)
	// userpreferenceDescAverageRating is the schema descriptor for average_rating field.
	userpreferenceDescAverageRating := userpreferenceFields[6].Descriptor()
	// userpreference.DefaultAverageRating holds the default value on creation for the average_rating field.
	userpreference.DefaultAverageRating = userpreferenceDescAverageRating.Default.(float64)
	// userpreferenceDescLastUpdated is the schema descriptor for last_updated field.
	userpreferenceDescLastUpdated := userpreferenceFields[7].Descriptor()
	// userpreference.DefaultLastUpdated holds the default value on creation for the last_updated field.
	userpreference.DefaultLastUpdated = userpreferenceDescLastUpdated.Default.(func() time.Time)
}
