package config

import (
	"os"
	"sync"
)

type GeminiConfig struct {
	APIKey    string
	ChatModel string
	EvalModel string
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once
)

func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		chatModel := os.Getenv("GEMINI_MODEL")
		if chatModel == "" {
			chatModel = "gemini-2.0-flash"
		}
		evalModel := os.Getenv("GEMINI_EVAL_MODEL")
		if evalModel == "" {
			evalModel = chatModel
		}
		geminiConfig = &GeminiConfig{
			APIKey:    os.Getenv("GEMINI_API_KEY"),
			ChatModel: chatModel,
			EvalModel: evalModel,
		}
	})
	return geminiConfig
}
