package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTML(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain",
			in:   "hello",
			want: "hello",
		},
		{
			name: "bold",
			in:   "Start with **Physics** now",
			want: "Start with <strong>Physics</strong> now",
		},
		{
			name: "paragraphs",
			in:   "one\n\ntwo",
			want: "one<br /><br />two",
		},
		{
			name: "numbered list",
			in:   "Steps:\n\n1. Spec\n2. RTL",
			want: "Steps:<br /><br /><li>1. Spec</li><li>2. RTL</li>",
		},
		{
			name: "bullets",
			in:   "Summary:\n\n• band theory\n• p-n junctions\n\nMore?",
			want: "Summary:<br /><br /><li>band theory</li><li>p-n junctions</li><br />More?",
		},
		{
			name: "escapes markup",
			in:   "<script>x</script> & **y**",
			want: "&lt;script&gt;x&lt;/script&gt; &amp; <strong>y</strong>",
		},
		{
			name: "decimal is not a list",
			in:   "band gap of 1.12 eV",
			want: "band gap of 1.12 eV",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTML(tc.in))
		})
	}
}

func TestMarkdown(t *testing.T) {
	in := "Summary:\n\n• first\n• second\nnot•a bullet"
	assert.Equal(t, "Summary:\n\n- first\n- second\nnot•a bullet", Markdown(in))
}

func TestTerminal(t *testing.T) {
	out := Terminal("Start with **Semiconductor Physics**\n\n• band theory", "notty", 60)
	assert.Contains(t, out, "Semiconductor Physics")
	assert.Contains(t, out, "band theory")
}
