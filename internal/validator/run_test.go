package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsraelAraujo70/acpcore/internal/domain"
	"github.com/IsraelAraujo70/acpcore/internal/protocol"
)

func msg(m domain.Message) InputMessage { return InputMessage{Message: m} }

func TestRunHappyPathProducesNoFindings(t *testing.T) {
	messages := []InputMessage{
		msg(domain.Message{Kind: domain.KindInitialize, Method: domain.MethodInitialize}),
		msg(domain.Message{Kind: domain.KindInitializeResult, Method: domain.MethodInitialize}),
		msg(domain.Message{Kind: domain.KindSessionNewResult, Method: domain.MethodSessionNew, SessionNewResult: &domain.SessionNewResult{SessionID: "s1"}}),
		msg(domain.Message{Kind: domain.KindSessionPrompt, Method: domain.MethodSessionPrompt, SessionPrompt: &domain.SessionPromptParams{SessionID: "s1"}}),
		msg(domain.Message{Kind: domain.KindSessionPromptResult, Method: domain.MethodSessionPrompt, SessionPromptResult: &domain.SessionPromptResult{SessionID: "s1", StopReason: domain.StopEndTurn}}),
	}

	result := Run("conn-1", protocol.ACP, messages, false, nil)
	assert.Empty(t, result.Findings)
	assert.Equal(t, protocol.Ready, result.FinalPhase.Kind)
}

func TestRunResultWithoutPromptEmitsSessionFinding(t *testing.T) {
	messages := []InputMessage{
		msg(domain.Message{Kind: domain.KindInitialize, Method: domain.MethodInitialize}),
		msg(domain.Message{Kind: domain.KindInitializeResult, Method: domain.MethodInitialize}),
		msg(domain.Message{Kind: domain.KindSessionNewResult, Method: domain.MethodSessionNew, SessionNewResult: &domain.SessionNewResult{SessionID: "s1"}}),
		msg(domain.Message{Kind: domain.KindSessionPromptResult, Method: domain.MethodSessionPrompt, SessionPromptResult: &domain.SessionPromptResult{SessionID: "s1", StopReason: domain.StopEndTurn}}),
	}

	result := Run("conn-1", protocol.ACP, messages, false, nil)
	require.Len(t, result.Findings, 1)
	f := result.Findings[0]
	assert.Equal(t, Session, f.Lane)
	assert.Equal(t, Error, f.Severity)
	assert.Equal(t, CodeResultWithoutPrompt, f.Code)
	assert.Equal(t, "Session(s1)", f.Subject.String())
}

func TestRunIsDeterministicAcrossRepeatedFolds(t *testing.T) {
	messages := []InputMessage{
		msg(domain.Message{Kind: domain.KindInitialize, Method: domain.MethodInitialize}),
		msg(domain.Message{Kind: domain.KindSessionCancel, Method: domain.MethodSessionCancel, SessionCancel: &domain.SessionCancelParams{SessionID: "ghost"}}),
	}

	first := Run("conn-1", protocol.ACP, messages, false, nil)
	second := Run("conn-1", protocol.ACP, messages, false, nil)
	require.Equal(t, len(first.Findings), len(second.Findings))
	for i := range first.Findings {
		assert.Equal(t, first.Findings[i].Key(), second.Findings[i].Key())
	}
}

func TestRunStopOnFirstErrorHaltsFolding(t *testing.T) {
	messages := []InputMessage{
		msg(domain.Message{Kind: domain.KindSessionCancel, Method: domain.MethodSessionCancel, SessionCancel: &domain.SessionCancelParams{SessionID: "ghost"}}),
		msg(domain.Message{Kind: domain.KindInitialize, Method: domain.MethodInitialize}),
	}

	result := Run("conn-1", protocol.ACP, messages, true, nil)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, protocol.Initial, result.FinalPhase)
}

func TestRunMaxMessageBytesExceeded(t *testing.T) {
	limit := uint64(10)
	profile := RuntimeProfile{MaxMessageBytes: &limit}

	messages := []InputMessage{
		{Message: domain.Message{Kind: domain.KindInitialize, Method: domain.MethodInitialize}, RawByteLength: 1000},
	}

	result := Run("conn-1", protocol.ACP, messages, false, &profile)
	require.NotEmpty(t, result.Findings)
	found := false
	for _, f := range result.Findings {
		if f.Code == CodeMaxMessageBytesExceeded {
			found = true
			assert.Equal(t, Transport, f.Lane)
			assert.Equal(t, Error, f.Severity)
		}
	}
	assert.True(t, found)
}

func TestRunNullIDEmitsTransportWarning(t *testing.T) {
	nullID := domain.NullID()
	messages := []InputMessage{
		msg(domain.Message{Kind: domain.KindExtNotification, ID: &nullID, ExtMethod: "x/noop"}),
	}

	result := Run("conn-1", protocol.ACP, messages, false, nil)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, CodeNullID, result.Findings[0].Code)
	assert.Equal(t, Warning, result.Findings[0].Severity)
}

func TestRunCancelIdleSessionIsInfoNotError(t *testing.T) {
	messages := []InputMessage{
		msg(domain.Message{Kind: domain.KindInitialize, Method: domain.MethodInitialize}),
		msg(domain.Message{Kind: domain.KindInitializeResult, Method: domain.MethodInitialize}),
		msg(domain.Message{Kind: domain.KindSessionNewResult, Method: domain.MethodSessionNew, SessionNewResult: &domain.SessionNewResult{SessionID: "s1"}}),
		msg(domain.Message{Kind: domain.KindSessionCancel, Method: domain.MethodSessionCancel, SessionCancel: &domain.SessionCancelParams{SessionID: "s1"}}),
	}

	result := Run("conn-1", protocol.ACP, messages, false, nil)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, CodeCancelIdleSession, result.Findings[0].Code)
	assert.Equal(t, Info, result.Findings[0].Severity)
}

func TestRunToolSurfaceOutOfOrderOnlyWhenEnabled(t *testing.T) {
	completed := domain.SessionUpdate{
		Kind:     domain.UpdateToolCallUpdate,
		ToolCall: &domain.ToolCallUpdate{ToolCallID: "t1", Status: domain.ToolCallCompleted},
	}
	messages := []InputMessage{
		msg(domain.Message{Kind: domain.KindInitialize, Method: domain.MethodInitialize}),
		msg(domain.Message{Kind: domain.KindInitializeResult, Method: domain.MethodInitialize}),
		msg(domain.Message{Kind: domain.KindSessionNewResult, Method: domain.MethodSessionNew, SessionNewResult: &domain.SessionNewResult{SessionID: "s1"}}),
		msg(domain.Message{Kind: domain.KindSessionUpdate, Method: domain.MethodSessionUpdate, SessionUpdate: &domain.SessionUpdateParams{SessionID: "s1", Update: completed}}),
	}

	disabled := Run("conn-1", protocol.ACP, messages, false, nil)
	assert.Empty(t, disabled.Findings)

	profile := DefaultProfile()
	profile.ToolSurfaceEnabled = true
	enabled := Run("conn-1", protocol.ACP, messages, false, &profile)
	require.Len(t, enabled.Findings, 1)
	assert.Equal(t, CodeToolCallOutOfOrder, enabled.Findings[0].Code)
	assert.Equal(t, ToolSurface, enabled.Findings[0].Lane)
}

func TestRunCapabilityMismatchIsAdvisory(t *testing.T) {
	messages := []InputMessage{
		msg(domain.Message{Kind: domain.KindInitialize, Method: domain.MethodInitialize}),
		msg(domain.Message{
			Kind:   domain.KindInitializeResult,
			Method: domain.MethodInitialize,
			InitializeResult: &domain.InitializeResult{
				AgentCapabilities: domain.AgentCapabilities{
					PromptCapabilities: &domain.PromptCapabilities{Image: false},
				},
			},
		}),
		msg(domain.Message{Kind: domain.KindSessionNewResult, Method: domain.MethodSessionNew, SessionNewResult: &domain.SessionNewResult{SessionID: "s1"}}),
		msg(domain.Message{
			Kind:   domain.KindSessionPrompt,
			Method: domain.MethodSessionPrompt,
			SessionPrompt: &domain.SessionPromptParams{
				SessionID: "s1",
				Prompt:    []domain.ContentBlock{{Kind: domain.ContentImage, Data: "abc", MimeType: "image/png"}},
			},
		}),
	}

	result := Run("conn-1", protocol.ACP, messages, false, nil)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, Implementation, result.Findings[0].Lane)
	assert.Equal(t, Info, result.Findings[0].Severity)
	assert.Equal(t, CodeCapabilityViolation, result.Findings[0].Code)
}
