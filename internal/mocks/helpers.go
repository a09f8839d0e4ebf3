package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockProcessorForTest creates a new mock payment.Processor for testing
func NewMockProcessorForTest(t *testing.T) *MockProcessor {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockProcessor(ctrl)
}
