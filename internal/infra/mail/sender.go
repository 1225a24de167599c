package mail

import (
	"bytes"
	"fmt"
	"io"
	"text/template"

	"gopkg.in/gomail.v2"
)

const pairingTemplate = `Olá,

O gateway {{.Service}} precisa ser pareado com o WhatsApp.

Abra o WhatsApp no celular remetente > Aparelhos conectados > Conectar um aparelho
e escaneie o QR Code em anexo. O código expira em poucos segundos; se expirar,
um novo e-mail será enviado na próxima rodada de pareamento.
`

var pairingBody = template.Must(template.New("pairing").Parse(pairingTemplate))

// dialer is satisfied by *gomail.Dialer.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

func (s *EmailSender) dialer() dialer {
	return gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
}

// BuildPairingMessage monta o e-mail com o QR Code (PNG) anexado.
func (s *EmailSender) BuildPairingMessage(to string, data PairingEmailData, qrPNG []byte) (*gomail.Message, error) {
	var body bytes.Buffer
	if err := pairingBody.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("[%s] Pareamento do WhatsApp pendente", data.Service))
	m.SetBody("text/plain", body.String())
	m.Attach("pairing-qr.png",
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(qrPNG)
			return err
		}),
		gomail.SetHeader(map[string][]string{"Content-Type": {"image/png"}}),
	)
	return m, nil
}

func (s *EmailSender) SendPairing(to string, data PairingEmailData, qrPNG []byte) error {
	return s.send(s.dialer(), to, data, qrPNG)
}

func (s *EmailSender) send(d dialer, to string, data PairingEmailData, qrPNG []byte) error {
	m, err := s.BuildPairingMessage(to, data, qrPNG)
	if err != nil {
		return err
	}
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}
	return nil
}
