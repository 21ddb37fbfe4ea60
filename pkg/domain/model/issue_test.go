package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/snooze/pkg/domain/model"
	"github.com/secmon-lab/snooze/pkg/domain/types"
)

func TestIssue_HasLabel(t *testing.T) {
	exempt := types.Label(types.DefaultExemptLabel)

	tests := []struct {
		name   string
		labels []string
		want   bool
	}{
		{"no labels", nil, false},
		{"exact match", []string{"lane::staging"}, true},
		{"among other labels", []string{"bug", "lane::staging", "priority::high"}, true},
		{"duplicated label", []string{"lane::staging", "lane::staging"}, true},
		{"different case", []string{"Lane::Staging"}, false},
		{"prefix only", []string{"lane::"}, false},
		{"scoped sibling", []string{"lane::production"}, false},
		{"surrounding space", []string{" lane::staging"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue := &model.Issue{ID: 1, IID: 5, ProjectID: 9, Labels: tt.labels}
			if tt.want {
				gt.Bool(t, issue.HasLabel(exempt)).True()
			} else {
				gt.Bool(t, issue.HasLabel(exempt)).False()
			}
		})
	}
}
