package traceio

import (
	"github.com/IsraelAraujo70/acpcore/internal/codec"
	"github.com/IsraelAraujo70/acpcore/internal/validator"
)

// DecodeFailure records one trace line the codec refused to decode.
type DecodeFailure struct {
	LineIndex int
	Err       error
}

// DecodeResult is the outcome of decoding a batch of trace Lines into
// validator input.
type DecodeResult struct {
	Messages []validator.InputMessage
	Failures []DecodeFailure
}

// Decode runs every line through a single shared codec.State, in order,
// so request/response correlation works the same way it would for a live
// connection. A line the codec can't decode is recorded as a failure and
// skipped unless strict is set, in which case Decode stops and returns the
// failure's error.
func Decode(lines []Line, strict bool) (DecodeResult, error) {
	state := codec.NewState()
	var result DecodeResult

	for i, line := range lines {
		next, msg, err := codec.Decode(line.Direction, state, []byte(line.RawJSON))
		if err != nil {
			result.Failures = append(result.Failures, DecodeFailure{LineIndex: i, Err: err})
			if strict {
				return result, err
			}
			continue
		}
		state = next
		result.Messages = append(result.Messages, validator.InputMessage{
			Message:       msg,
			RawByteLength: len(line.RawJSON),
		})
	}

	return result, nil
}
