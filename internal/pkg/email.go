package pkg

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"` // 发件人邮箱
	Password string `yaml:"password"` // 授权码/密码
	From     string `yaml:"from"`     // 显示的发件人，可与 Username 相同
}

// Mailer SMTP 发信客户端
type Mailer struct {
	cfg SMTPConfig
}

func NewMailer(cfg SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	return d.DialAndSend(msg)
}

// FollowEmailHTML 新关注者通知正文
func FollowEmailHTML(follower string) string {
	return fmt.Sprintf(`<p>您好，</p><p>用户 <b>%s</b> 关注了您，去看看他的主页吧。</p>`, follower)
}
