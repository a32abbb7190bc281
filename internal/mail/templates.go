package mail

import "fmt"

func invitationHTML(firstName, organizationName, link string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<body style="font-family: sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <p>Hi %s,</p>
  <p>You have been invited to join <strong>%s</strong> on the community aid network.</p>
  <p><a href="%s">Accept the invitation</a> to set a password and join the team.</p>
  <p>If you were not expecting this invitation you can ignore this email.</p>
</body>
</html>`, firstName, organizationName, link)
}

func passwordResetHTML(firstName, link string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<body style="font-family: sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <p>Hi %s,</p>
  <p>We received a request to reset your password.</p>
  <p><a href="%s">Reset your password</a>. The link expires in one hour.</p>
  <p>If you did not request a reset, ignore this email and your password stays unchanged.</p>
</body>
</html>`, firstName, link)
}
