package service

import (
	"lawncare"
	"lawncare/internal/knowledge"
)

// KnowledgeService holds one knowledge base per region; the bases are static
// and safe for concurrent reads.
type KnowledgeService struct {
	bases map[lawncare.Region]*knowledge.Base
}

func NewKnowledgeService() *KnowledgeService {
	bases := make(map[lawncare.Region]*knowledge.Base, len(lawncare.AllRegions))
	for _, r := range lawncare.AllRegions {
		bases[r] = knowledge.NewBase(r)
	}
	return &KnowledgeService{bases: bases}
}

func (s *KnowledgeService) base(region lawncare.Region) (*knowledge.Base, error) {
	b, ok := s.bases[region]
	if !ok {
		return nil, ErrUnknownRegion
	}
	return b, nil
}

func (s *KnowledgeService) Guide(region lawncare.Region) (map[string][]knowledge.IdentificationFeature, error) {
	b, err := s.base(region)
	if err != nil {
		return nil, err
	}
	return b.IdentificationGuide(), nil
}

func (s *KnowledgeService) Identify(region lawncare.Region, observed []string) (knowledge.IdentificationResult, error) {
	b, err := s.base(region)
	if err != nil {
		return knowledge.IdentificationResult{}, err
	}
	return b.Identify(observed), nil
}

func (s *KnowledgeService) Treatments(region lawncare.Region, month int, stage knowledge.Stage) ([]knowledge.Recommendation, error) {
	b, err := s.base(region)
	if err != nil {
		return nil, err
	}
	return b.Recommendations(month, stage), nil
}

func (s *KnowledgeService) Lifecycle(region lawncare.Region, stage knowledge.Stage) (map[knowledge.Stage]knowledge.StageInfo, error) {
	b, err := s.base(region)
	if err != nil {
		return nil, err
	}
	return b.LifecycleInfo(stage), nil
}

func (s *KnowledgeService) Prevention(region lawncare.Region) ([]knowledge.PreventionStrategy, error) {
	b, err := s.base(region)
	if err != nil {
		return nil, err
	}
	return b.PreventionStrategies(), nil
}

func (s *KnowledgeService) Calendar(region lawncare.Region) ([]knowledge.CalendarEntry, error) {
	b, err := s.base(region)
	if err != nil {
		return nil, err
	}
	return b.SeasonalCalendar(), nil
}

func (s *KnowledgeService) Diagnose(region lawncare.Region, treatment string, month int, level string) (knowledge.Diagnosis, error) {
	b, err := s.base(region)
	if err != nil {
		return knowledge.Diagnosis{}, err
	}
	return b.DiagnoseControlFailure(treatment, month, level), nil
}
