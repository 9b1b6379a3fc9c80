package factory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/shieldsms/smishing-filter/internal/adapters/model"
	"github.com/shieldsms/smishing-filter/internal/config"
	"github.com/shieldsms/smishing-filter/internal/core"
	"github.com/shieldsms/smishing-filter/internal/rules"
	"github.com/shieldsms/smishing-filter/internal/utils"
)

// StrategyFactory assembles the ordered classification strategy chain
type StrategyFactory struct {
	cfg           *config.Config
	logger        *zap.Logger
	scorer        *rules.Scorer
	textProcessor *utils.TextProcessor
}

// NewStrategyFactory creates a new strategy factory
func NewStrategyFactory(
	cfg *config.Config,
	logger *zap.Logger,
	scorer *rules.Scorer,
	textProcessor *utils.TextProcessor,
) *StrategyFactory {
	return &StrategyFactory{
		cfg:           cfg,
		logger:        logger,
		scorer:        scorer,
		textProcessor: textProcessor,
	}
}

// CreateStrategies builds the chain: optional external model first, then the
// rule scorer, then the trivial keyword fallback
func (f *StrategyFactory) CreateStrategies() ([]core.TextClassifier, error) {
	strategies := []core.TextClassifier{}

	if f.cfg.GetBool("model.enabled") {
		external, err := f.createExternalModel()
		if err != nil {
			return nil, err
		}
		strategies = append(strategies, external)
	}

	strategies = append(strategies, f.scorer, rules.NewKeywordFallback())
	return strategies, nil
}

func (f *StrategyFactory) createExternalModel() (core.TextClassifier, error) {
	provider := f.cfg.GetString("model.provider")
	switch provider {
	case "openai":
		return model.NewOpenAIClient(
			f.cfg.GetString("openai.api_key"),
			f.cfg.GetString("openai.model_name"),
			f.cfg.GetInt("openai.max_tokens"),
			float32(f.cfg.GetFloat64("openai.temperature")),
			float32(f.cfg.GetFloat64("openai.top_p")),
			f.cfg.GetInt("openai.max_text_size"),
			f.logger,
			f.textProcessor,
		), nil
	default:
		return nil, fmt.Errorf("unsupported model provider: %s", provider)
	}
}
