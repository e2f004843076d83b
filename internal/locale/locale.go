// Package locale holds the user-facing strings of the session client and
// picks a translation for the configured locale.
package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	ErrorTitle      = "common.error"
	CaptchaError    = "login.captchaError"
	CredentialError = "login.credentialError"
	LoginSuccess    = "login.loginSuccess"
	WelcomeBack     = "login.welcomeBack"
	LoggedOut       = "login.loggedOut"
	NotLoggedIn     = "login.notLoggedIn"
)

var supported = []language.Tag{language.English, language.SimplifiedChinese}

var messages = map[language.Tag]map[string]string{
	language.English: {
		ErrorTitle:      "Error",
		CaptchaError:    "Wrong captcha!",
		CredentialError: "Wrong username or password!",
		LoginSuccess:    "Login successful",
		WelcomeBack:     "Welcome back, %s!",
		LoggedOut:       "Signed out",
		NotLoggedIn:     "You're not logged in yet. Run 'srm login' to get started.",
	},
	language.SimplifiedChinese: {
		ErrorTitle:      "错误",
		CaptchaError:    "验证码错误!",
		CredentialError: "账号或密码错误!",
		LoginSuccess:    "登录成功",
		WelcomeBack:     "欢迎回来，%s ！",
		LoggedOut:       "已退出登录",
		NotLoggedIn:     "尚未登录，请先运行 'srm login'。",
	},
}

var (
	cat     = catalog.NewBuilder(catalog.Fallback(language.English))
	matcher = language.NewMatcher(supported)
)

func init() {
	for tag, msgs := range messages {
		for key, msg := range msgs {
			if err := cat.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
}

// Translator renders message keys for one locale.
type Translator struct {
	tag language.Tag
	p   *message.Printer
}

// New returns a Translator for locale (a BCP 47 tag such as "en" or "zh-CN").
// Unsupported or malformed locales fall back to English.
func New(locale string) *Translator {
	_, idx, _ := matcher.Match(language.Make(locale))
	tag := supported[idx]
	return &Translator{tag: tag, p: message.NewPrinter(tag, message.Catalog(cat))}
}

// T renders key with args.
func (t *Translator) T(key string, args ...any) string {
	return t.p.Sprintf(key, args...)
}

// Tag returns the resolved language.
func (t *Translator) Tag() language.Tag { return t.tag }
