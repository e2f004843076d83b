package locale

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestTranslatorEnglish(t *testing.T) {
	tr := New("en-US")
	require.Equal(t, language.English, tr.Tag())
	require.Equal(t, "Wrong captcha!", tr.T(CaptchaError))
	require.Equal(t, "Welcome back, Alice!", tr.T(WelcomeBack, "Alice"))
}

func TestTranslatorChinese(t *testing.T) {
	tr := New("zh-CN")
	require.Equal(t, language.SimplifiedChinese, tr.Tag())
	require.Equal(t, "验证码错误!", tr.T(CaptchaError))
	require.Equal(t, "账号或密码错误!", tr.T(CredentialError))
}

func TestTranslatorFallback(t *testing.T) {
	for _, loc := range []string{"", "fr", "not a tag"} {
		require.Equal(t, language.English, New(loc).Tag(), loc)
	}
}
