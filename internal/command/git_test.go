package command

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewGitRunner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := NewMockRunner(ctrl)
	got := NewGitRunner(mockRunner)

	require.NotNil(t, got)
}

func TestGitRunner_Version(t *testing.T) {
	tests := []struct {
		name        string
		setupMock   func(*MockRunner)
		want        string
		wantErr     bool
		errContains string
	}{
		{
			name: "returns version successfully",
			setupMock: func(m *MockRunner) {
				m.EXPECT().
					RunInDir(gomock.Any(), "", "git", "--version").
					Return("git version 2.44.0\n", "", nil)
			},
			want: "git version 2.44.0",
		},
		{
			name: "fails when git is not installed",
			setupMock: func(m *MockRunner) {
				m.EXPECT().
					RunInDir(gomock.Any(), "", "git", "--version").
					Return("", "command not found", fmt.Errorf("exec: \"git\": executable file not found in $PATH"))
			},
			wantErr:     true,
			errContains: "failed to run git",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRunner := NewMockRunner(ctrl)
			tt.setupMock(mockRunner)

			runner := NewGitRunner(mockRunner)
			got, err := runner.Version(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGitRunner_HooksPath(t *testing.T) {
	tests := []struct {
		name      string
		dir       string
		setupMock func(*MockRunner)
		want      string
	}{
		{
			name: "returns configured hooks path",
			dir:  "/test/repo",
			setupMock: func(m *MockRunner) {
				m.EXPECT().
					RunInDir(gomock.Any(), "/test/repo", "git", "config", "--get", "core.hooksPath").
					Return(".husky\n", "", nil)
			},
			want: ".husky",
		},
		{
			name: "unset key reports empty path",
			dir:  "/test/repo",
			setupMock: func(m *MockRunner) {
				m.EXPECT().
					RunInDir(gomock.Any(), "/test/repo", "git", "config", "--get", "core.hooksPath").
					Return("", "", fmt.Errorf("exit status 1"))
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRunner := NewMockRunner(ctrl)
			tt.setupMock(mockRunner)

			runner := NewGitRunner(mockRunner)
			got, err := runner.HooksPath(context.Background(), tt.dir)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
