package mail

import "fmt"

// VerificationSubject is the subject line for verification emails.
const VerificationSubject = "🚀 Verify Your Promptforge Account - Start Optimizing AI Conversations"

func welcomeText(firstName string) string {
	if firstName != "" {
		return "Welcome " + firstName + "!"
	}
	return "Welcome!"
}

const verificationHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Verify Your Promptforge Account</title>
</head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f4f4f4;">
    <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff; padding: 20px;">
        <!-- Header -->
        <div style="text-align: center; padding: 20px 0; border-bottom: 2px solid #ffff00;">
            <h1 style="color: #333; margin: 0; font-size: 28px;">
                <span style="color: #ffff00;">⚡</span> Promptforge
            </h1>
            <p style="color: #666; margin: 5px 0 0 0; font-size: 14px;">
                Stop Overthinking AI Conversations
            </p>
        </div>

        <!-- Content -->
        <div style="padding: 40px 20px;">
            <h2 style="color: #333; margin-bottom: 20px;">%s 🚀</h2>

            <p style="color: #555; line-height: 1.6; font-size: 16px;">
                Thanks for signing up for Promptforge! You're one step away from supercharging your AI conversations.
            </p>

            <p style="color: #555; line-height: 1.6; font-size: 16px;">
                Click the button below to verify your email address and start optimizing your prompts:
            </p>

            <!-- CTA Button -->
            <div style="text-align: center; margin: 30px 0;">
                <a href="%s"
                   style="background-color: #ffff00; color: #000; padding: 15px 30px; text-decoration: none; border-radius: 5px; font-weight: bold; font-size: 16px; display: inline-block; border: 2px solid #ffff00;">
                    Verify Email Address ✅
                </a>
            </div>

            <p style="color: #777; font-size: 14px; line-height: 1.5;">
                If the button doesn't work, copy and paste this link into your browser:
            </p>
            <p style="background-color: #f8f8f8; padding: 10px; border-radius: 4px; word-break: break-all; font-size: 12px; color: #555;">
                %s
            </p>
        </div>

        <!-- Footer -->
        <div style="background-color: #f8f8f8; padding: 20px; text-align: center; border-top: 1px solid #eee;">
            <p style="margin: 0; color: #666; font-size: 14px;">
                This verification link expires in 24 hours.
            </p>
            <p style="margin: 10px 0 0 0; color: #666; font-size: 12px;">
                © 2025 Promptforge. Made for better AI conversations.
            </p>
        </div>
    </div>
</body>
</html>`

// VerificationHTML renders the HTML body of the verification email.
func VerificationHTML(firstName, verificationURL string) string {
	return fmt.Sprintf(verificationHTMLTemplate, welcomeText(firstName), verificationURL, verificationURL)
}

const verificationTextTemplate = `
%s

Thanks for signing up! Click the link below to verify your email address:

%s

This link expires in 24 hours.

Once verified, you can start optimizing your AI conversations with our Chrome extension.

- Promptforge Team
`

// VerificationText renders the plain text body of the verification email.
func VerificationText(firstName, verificationURL string) string {
	return fmt.Sprintf(verificationTextTemplate, welcomeText(firstName), verificationURL)
}
