package providers

import (
	"fmt"
	"strings"

	"researchhub/internal/config"
)

type NamedLLMProvider struct {
	Ref      ProviderRef
	Provider LLMProvider
}

// Manager holds the configured generation providers in preference order.
type Manager struct {
	llmProviders []NamedLLMProvider
}

func NewManager(cfg config.Config) (*Manager, error) {
	refs := ParseProviderList(cfg.LLMProviders)
	m := &Manager{}
	for _, ref := range refs {
		p, err := buildProvider(ref, cfg)
		if err != nil {
			return nil, err
		}
		m.llmProviders = append(m.llmProviders, NamedLLMProvider{Ref: ref, Provider: p})
	}
	if len(m.llmProviders) == 0 {
		m.llmProviders = []NamedLLMProvider{{Ref: ProviderRef{Raw: "mock", Name: "mock"}, Provider: NewMockProvider()}}
	}
	return m, nil
}

func (m *Manager) First() (LLMProvider, ProviderRef) {
	return m.llmProviders[0].Provider, m.llmProviders[0].Ref
}

func (m *Manager) Count() int {
	return len(m.llmProviders)
}

func (m *Manager) FindByName(name string) (LLMProvider, ProviderRef, bool) {
	target := strings.ToLower(strings.TrimSpace(name))
	if target == "" {
		return nil, ProviderRef{}, false
	}
	for i := range m.llmProviders {
		if strings.ToLower(m.llmProviders[i].Ref.Name) == target {
			return m.llmProviders[i].Provider, m.llmProviders[i].Ref, true
		}
	}
	return nil, ProviderRef{}, false
}

func buildProvider(ref ProviderRef, cfg config.Config) (LLMProvider, error) {
	switch strings.ToLower(ref.Name) {
	case "mock":
		return NewMockProvider(), nil
	case "groq":
		return NewGroqProvider(ref.KeyAlias, cfg.GroqModel), nil
	case "openai":
		return NewOpenAIProvider(ref.KeyAlias), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", ref.Name)
	}
}
