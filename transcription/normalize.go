package transcription

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Normalize folds a collaborator response into the canonical
// TranscriptionResponse. Backends receive either typed structs or plain JSON
// mappings depending on the service; both shapes are accepted here, once,
// and nothing downstream ever inspects the raw form again.
func Normalize(raw any) (*TranscriptionResponse, error) {
	switch v := raw.(type) {
	case *TranscriptionResponse:
		return v, nil
	case TranscriptionResponse:
		return &v, nil
	case map[string]any:
		return fromMapping(v)
	default:
		return nil, fmt.Errorf("unsupported transcription response shape %T", raw)
	}
}

func fromMapping(m map[string]any) (*TranscriptionResponse, error) {
	resp := &TranscriptionResponse{}

	if v, ok := m["text"].(string); ok {
		resp.Text = v
	}
	if v, ok := m["language"].(string); ok {
		resp.Language = v
	}
	if v, ok := m["duration"]; ok {
		d, err := toFloat(v)
		if err != nil {
			return nil, fmt.Errorf("duration: %w", err)
		}
		resp.Duration = d
	}

	rawSegs, ok := m["segments"]
	if !ok {
		return resp, nil
	}
	list, ok := rawSegs.([]any)
	if !ok {
		return nil, fmt.Errorf("segments is %T, expected a list", rawSegs)
	}

	for i, item := range list {
		sm, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("segment %d is %T, expected a mapping", i, item)
		}
		seg := Segment{}
		var err error
		if seg.Start, err = toFloat(sm["start"]); err != nil {
			return nil, fmt.Errorf("segment %d start: %w", i, err)
		}
		if seg.End, err = toFloat(sm["end"]); err != nil {
			return nil, fmt.Errorf("segment %d end: %w", i, err)
		}
		if text, ok := sm["text"].(string); ok {
			seg.Text = text
		}
		resp.Segments = append(resp.Segments, seg)
	}

	return resp, nil
}

// toFloat accepts the numeric shapes JSON decoding produces.
func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	case string:
		return strconv.ParseFloat(n, 64)
	case nil:
		return 0, fmt.Errorf("missing value")
	default:
		return 0, fmt.Errorf("value %v (%T) is not numeric", v, v)
	}
}
