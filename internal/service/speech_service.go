package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"echoprep/config"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// ErrSpeechUnavailable marks a degraded speech result: the placeholder text
// or empty audio should be shown instead of an error page.
var ErrSpeechUnavailable = errors.New("speech provider unavailable")

// TranscriptPlaceholder is returned whenever audio could not be processed.
const TranscriptPlaceholder = "Could not process audio. Please type your response."

const (
	hfBaseURL  = "https://api-inference.huggingface.co/models/"
	hfTTSModel = "espnet/kan-bayashi_ljspeech_vits"
	hfSTTModel = "openai/whisper-base"
)

// SpeechService converts interview questions to audio and spoken answers to
// text through the Hugging Face inference API. Both directions degrade to a
// documented placeholder instead of failing the interview flow.
type SpeechService interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

type speechService struct {
	client *resty.Client
	token  string
}

func NewSpeechService(cfg *config.Config) SpeechService {
	client := resty.New().
		SetBaseURL(hfBaseURL).
		SetTimeout(30 * time.Second)
	if cfg.HuggingFaceToken == "" {
		log.Warn().Msg("HUGGINGFACE_API_TOKEN is not set. Speech synthesis and transcription will return placeholders.")
	}
	return &speechService{client: client, token: cfg.HuggingFaceToken}
}

func (s *speechService) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if s.token == "" {
		return nil, ErrSpeechUnavailable
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.token).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"inputs": text}).
		Post(hfTTSModel)
	if err != nil {
		log.Error().Err(err).Msg("Text-to-speech request failed")
		return nil, fmt.Errorf("%w: %v", ErrSpeechUnavailable, err)
	}
	if !resp.IsSuccess() {
		log.Error().Int("status", resp.StatusCode()).Msg("Text-to-speech provider returned an error status")
		return nil, fmt.Errorf("%w: status %d", ErrSpeechUnavailable, resp.StatusCode())
	}
	return resp.Body(), nil
}

func (s *speechService) Transcribe(ctx context.Context, audio []byte) (string, error) {
	if s.token == "" {
		return TranscriptPlaceholder, ErrSpeechUnavailable
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.token).
		SetBody(audio).
		Post(hfSTTModel)
	if err != nil {
		log.Error().Err(err).Msg("Speech-to-text request failed")
		return TranscriptPlaceholder, fmt.Errorf("%w: %v", ErrSpeechUnavailable, err)
	}
	if !resp.IsSuccess() {
		log.Error().Int("status", resp.StatusCode()).Msg("Speech-to-text provider returned an error status")
		return TranscriptPlaceholder, fmt.Errorf("%w: status %d", ErrSpeechUnavailable, resp.StatusCode())
	}

	var parsed struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil || parsed.Text == "" {
		log.Warn().Err(err).Msg("Speech-to-text response had no transcript")
		return TranscriptPlaceholder, ErrSpeechUnavailable
	}
	return parsed.Text, nil
}
