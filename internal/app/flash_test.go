package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhubert/nexus/internal/keys"
)

func TestCopyLastReply(t *testing.T) {
	tests := []struct {
		name      string
		withReply bool
		copyErr   error
		wantFlash string
		wantCopy  string
	}{
		{name: "nothing yet", wantFlash: "Nothing to copy yet"},
		{name: "copies reply", withReply: true, wantFlash: "Copied reply", wantCopy: "the answer"},
		{name: "clipboard failure", withReply: true, copyErr: errors.New("no display"), wantFlash: "Clipboard unavailable", wantCopy: "the answer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var copied string
			clip := WithClipboard(func(s string) error {
				copied = s
				return tt.copyErr
			})
			m := testModelWithSize(testConfig(), &fakeClient{results: []string{"the answer"}}, 120, 30, clip)
			if tt.withReply {
				sendAndReply(t, m)
			}

			_, cmd := m.Update(keyPress(keys.CtrlY))
			require.NotNil(t, cmd, "flash should start its timer")
			assert.True(t, m.footer.HasFlash())
			assert.Contains(t, plainView(m), tt.wantFlash)
			assert.Equal(t, tt.wantCopy, copied)
		})
	}
}

func TestShowFlash_ReturnsTick(t *testing.T) {
	m := testModelWithSize(testConfig(), &fakeClient{}, 100, 30)
	assert.NotNil(t, m.ShowFlashInfo("hello"))
	assert.True(t, m.footer.HasFlash())
}
