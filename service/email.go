package service

import (
	"fmt"
	"html"

	"monviso/config"

	"gopkg.in/gomail.v2"
)

// EmailService 邮件服务
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// Enabled 是否启用邮件
func (s *EmailService) Enabled() bool {
	return s != nil && s.cfg != nil && s.cfg.Enabled
}

// SendWelcomeEmail 发送注册欢迎邮件
func (s *EmailService) SendWelcomeEmail(toEmail, name, appURL string) error {
	if !s.Enabled() {
		return fmt.Errorf("邮件服务未启用，请配置 MONVISO_EMAIL_ENABLED=true")
	}

	subject := "【MonViso】欢迎加入"
	body := s.generateWelcomeEmailBody(name, appURL)

	return s.sendEmail(toEmail, subject, body)
}

// generateWelcomeEmailBody 生成欢迎邮件内容
func (s *EmailService) generateWelcomeEmailBody(name, appURL string) string {
	name = html.EscapeString(name)
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: 'Microsoft YaHei', Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #6366f1, #4f46e5); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 40px 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 20px; }
        .btn { display: inline-block; background: linear-gradient(135deg, #6366f1, #4f46e5); color: white !important; text-decoration: none; padding: 14px 40px; border-radius: 8px; font-weight: 600; margin: 20px 0; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>💰 MonViso</h1>
        </div>
        <div class="content">
            <p>尊敬的 <strong>%s</strong>，您好！</p>
            <p>您的账号已创建成功。完成引导设置后，即可在仪表盘中查看收入、支出与储蓄目标的汇总。</p>
            <p style="text-align: center;">
                <a href="%s" class="btn">开始设置</a>
            </p>
        </div>
        <div class="footer">
            <p>此邮件由系统自动发送，请勿回复</p>
            <p>© MonViso - 您的个人预算助手</p>
        </div>
    </div>
</body>
</html>
`, name, appURL)
}

// sendEmail 发送邮件
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	return nil
}

// SendTestEmail 发送测试邮件
func (s *EmailService) SendTestEmail(toEmail string) error {
	if !s.Enabled() {
		return fmt.Errorf("邮件服务未启用")
	}

	subject := "【MonViso】邮件配置测试"
	body := `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; padding: 20px;">
    <h2>✅ 邮件配置成功</h2>
    <p>如果您收到这封邮件，说明邮件服务配置正确。</p>
    <p style="color: #666;">MonViso</p>
</body>
</html>
`
	return s.sendEmail(toEmail, subject, body)
}
