package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siliconguide.io/silicon-guide/internal/handbook"
)

func TestGreeting(t *testing.T) {
	catalog, err := handbook.Embedded()
	require.NoError(t, err)

	cases := []struct {
		name string
		ctx  Context
		want string
	}{
		{
			name: "no context",
			want: "Hello! I'm your AI tutor for semiconductor technology. How can I help you today?",
		},
		{
			name: "chapter",
			ctx:  Context{ChapterID: "ch3"},
			want: `Hello! I see you're reading about "Semiconductor Physics & Materials Science". Feel free to ask me any questions about this topic or the semiconductor field in general.`,
		},
		{
			name: "chapter wins over resource",
			ctx:  Context{ChapterID: "ch1", ResourceID: "res3_1"},
			want: `Hello! I see you're reading about "Welcome & The Modern Semiconductor Era". Feel free to ask me any questions about this topic or the semiconductor field in general.`,
		},
		{
			name: "unknown chapter",
			ctx:  Context{ChapterID: "ch42"},
			want: `Hello! I see you're reading about "Unknown Chapter". Feel free to ask me any questions about this topic or the semiconductor field in general.`,
		},
		{
			name: "resource",
			ctx:  Context{ResourceID: "res3_1"},
			want: `Hello! I see you're looking at "Band Theory of Solids". What would you like to understand better about this resource?`,
		},
		{
			name: "unknown resource",
			ctx:  Context{ResourceID: "res-nope"},
			want: `Hello! I see you're looking at "Unknown Resource". What would you like to understand better about this resource?`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Greeting(tc.ctx, catalog))
		})
	}
}

func TestGreeting_NilTitles(t *testing.T) {
	got := Greeting(Context{ChapterID: "ch3"}, nil)
	assert.Contains(t, got, unknownChapter)
}
