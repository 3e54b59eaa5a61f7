package email

import (
    "crypto/tls"
    "fmt"
    "net"
    "net/smtp"

    "pagarme-payment-bridge/config"
)

type SMTPService struct {
    config config.SMTPConfig
}

func NewSMTPService(cfg config.SMTPConfig) *SMTPService {
    return &SMTPService{
        config: cfg,
    }
}

func (s *SMTPService) SendEmail(to, subject, body string) error {
    tlsConfig := &tls.Config{
        ServerName: s.config.Host,
    }

    conn, err := net.Dial("tcp", fmt.Sprintf("%s:%s", s.config.Host, s.config.Port))
    if err != nil {
        return fmt.Errorf("failed to connect to SMTP server: %v", err)
    }

    client, err := smtp.NewClient(conn, s.config.Host)
    if err != nil {
        return fmt.Errorf("failed to create SMTP client: %v", err)
    }
    defer client.Close()

    if err = client.StartTLS(tlsConfig); err != nil {
        return fmt.Errorf("failed to start TLS: %v", err)
    }

    if s.config.Username != "" {
        auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
        if err = client.Auth(auth); err != nil {
            return fmt.Errorf("failed to authenticate: %v", err)
        }
    }

    if err = client.Mail(s.config.From); err != nil {
        return fmt.Errorf("failed to set sender: %v", err)
    }
    if err = client.Rcpt(to); err != nil {
        return fmt.Errorf("failed to set recipient: %v", err)
    }

    w, err := client.Data()
    if err != nil {
        return fmt.Errorf("failed to create email body writer: %v", err)
    }

    headers := fmt.Sprintf(
        "From: %s\r\n"+
            "To: %s\r\n"+
            "Subject: %s\r\n"+
            "MIME-Version: 1.0\r\n"+
            "Content-Type: text/html; charset=UTF-8\r\n"+
            "\r\n",
        s.config.From, to, subject,
    )

    if _, err = w.Write([]byte(headers + body)); err != nil {
        return fmt.Errorf("failed to write email body: %v", err)
    }

    if err = w.Close(); err != nil {
        return fmt.Errorf("failed to close email body writer: %v", err)
    }

    return client.Quit()
}
