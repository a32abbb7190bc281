package localize

// tables holds the per-language string tables. English is complete;
// other languages fall back to English for missing keys.
var tables = map[string]map[string]string{
	"en": {
		"SignUpHeading":                      "Sign up your community organization",
		"SignUpDescription":                  "Are you a community organization helping Sri Lankan households with their essential food requirements during the economic crisis? Sign up to join our database.",
		"SignUpLearnMore":                    "Learn more about the project",
		"FieldsOrganizationName":             "Organization name",
		"FieldsFullName":                     "Full name",
		"FieldsFirstName":                    "First name",
		"FieldsLastName":                     "Last name",
		"FieldsEmail":                        "Email",
		"FieldsContact":                      "Contact number",
		"FieldsPassword":                     "Password",
		"FieldsPasswordConfirm":              "Confirm your password",
		"FieldsUserRole":                     "User role",
		"SignUpText":                         "Sign Up",
		"SignInText":                         "Sign In",
		"AlreadyHaveAnAccountText":           "Already have an account?",
		"DontHaveAnAccountText":              "Don't have an account?",
		"SignInHeading":                      "Sign into your organization",
		"SignInDescription":                  "Are you a community organization helping Sri Lankan households with their essential food requirements during the economic crisis? Sign up to join our database.",
		"ForgotPassword":                     "Forgot your password?",
		"ForgotPasswordHeading":              "Forgot password",
		"ResetPasswordText":                  "Reset password",
		"ResetPasswordHeading":               "Reset password",
		"SignUpOrganizationNameRequired":     "Organization name is required",
		"SignUpFirstNameRequired":            "First name is required",
		"SignUpLastNameRequired":             "Last name is required",
		"SignUpEmailRequired":                "Email is required",
		"SignUpEmailInvalid":                 "Email is invalid",
		"SignUpContactNumberRequired":        "Contact number is required",
		"SignUpMinimumLength":                "Password must be at least 6 characters",
		"SignUpPasswordMismatch":             "Passwords do not match",
		"SignInEmailRequired":                "Email is required",
		"SignInPasswordRequired":             "Password is required",
		"ForgotPasswordEmailRequired":        "Email is required",
		"ResetPasswordPasswordMinimumLength": "Password must be at least 6 characters",
		"ResetPasswordPasswordMismatch":      "Passwords do not match",
		"TeamInviteHeading":                  "Invite a team member",
		"TeamInviteDescription":              "Invite a team member to join your organization",
		"TeamInviteSubmitButton":             "Invite Member",
		"TeamInviteFirstNameRequired":        "First name is required",
		"TeamInviteLastNameRequired":         "Last name is required",
		"TeamInviteEmailRequired":            "Email is required",
		"TeamInviteEmailInvalid":             "Email is invalid",
		"OrganizationNotApproved":            "Your organization hasn't been approved yet and won't be visible to the public.",
		"OrganizationNotApprovedCallToAction": "Book a call with us so we can get your organization approved.",
		"OrganizationNotApprovedCallToActionLink": "Book onboarding call",
		"ContactUs":            "Contact us",
		"FieldRequired":        "This field is required",
		"FieldEmailInvalid":    "Email is invalid",
		"FieldURLInvalid":      "URL is invalid",
		"FieldQuantityInvalid": "Quantity must be greater than zero",
		"FieldPlaceUnknown":    "Location must be one of your organization's locations",
	},
	"si": {
		"SignUpHeading":                      "ඔබේ ප්‍රජා සංවිධානය ලියාපදිංචි කරන්න",
		"SignUpDescription":                  "ඔබ ආර්ථික අර්බුදය තුළ ශ්‍රී ලාංකික නිවාසවල අත්‍යවශ්‍ය ආහාර අවශ්‍යතා සඳහා උපකාර කරන ප්‍රජා සංවිධානයක්ද? අපගේ දත්ත සමුදායට සම්බන්ධ වීමට ලියාපදිංචි වන්න.",
		"SignUpLearnMore":                    "ව්යාපෘතිය ගැන තව දැනගන්න",
		"FieldsOrganizationName":             "සංවිධානයේ නම",
		"FieldsFullName":                     "සම්පූර්ණ නම",
		"FieldsFirstName":                    "මුල් නම",
		"FieldsLastName":                     "අවසන් නම",
		"FieldsEmail":                        "විද්යුත් තැපෑල",
		"FieldsContact":                      "ඇමතුම් අංකය",
		"FieldsPassword":                     "රහස් පදය",
		"FieldsPasswordConfirm":              "ඔබගේ මුරපදය තහවුරු කරන්න",
		"FieldsUserRole":                     "පරිශීලක භූමිකාව",
		"SignUpText":                         "ලියාපදිංචි වන්න",
		"SignInText":                         "පුරන්න",
		"AlreadyHaveAnAccountText":           "දැනටමත් ගිණුමක් තිබේද?",
		"DontHaveAnAccountText":              "ගිණුමක් නැද්ද?",
		"SignInHeading":                      "ඔබේ සංවිධානයට පුරනය වන්න",
		"SignInDescription":                  "ඔබ ආර්ථික අර්බුදයේදී ශ්‍රී ලාංකික නිවාසවල අත්‍යවශ්‍ය ආහාර අවශ්‍යතා සඳහා උපකාර කරන ප්‍රජා සංවිධානයක්ද? අපගේ දත්ත සමුදායට සම්බන්ධ වීමට ලියාපදිංචි වන්න.",
		"ForgotPassword":                     "මුරපදය අමතක වුනාද?",
		"ForgotPasswordHeading":              "මුරපදය අමතක වුණා ද",
		"ResetPasswordText":                  "මුරපදය යළි සකසන්න",
		"ResetPasswordHeading":               "මුරපදය යළි සකසන්න",
		"SignUpOrganizationNameRequired":     "සංවිධානයේ නම අවශ්‍යයි",
		"SignUpFirstNameRequired":            "මුල් නම අවශ්ය වේ",
		"SignUpLastNameRequired":             "අවසාන නම අවශ්ය වේ",
		"SignUpEmailRequired":                "විද්‍යුත් තැපෑල අවශ්‍යයි",
		"SignUpEmailInvalid":                 "විද්‍යුත් තැපෑල වලංගු නොවේ",
		"SignUpContactNumberRequired":        "සම්බන්ධතා අංකය අවශ්‍ය වේ",
		"SignUpMinimumLength":                "මුරපදය අවම වශයෙන් අක්ෂර 6 ක් විය යුතුය",
		"SignUpPasswordMismatch":             "මුර පද ගැලපෙන්නේ නැත",
		"SignInEmailRequired":                "විද්‍යුත් තැපෑල අවශ්‍යයි",
		"SignInPasswordRequired":             "මුරපදය අවශ්යයි",
		"ForgotPasswordEmailRequired":        "විද්‍යුත් තැපෑල අවශ්‍යයි",
		"ResetPasswordPasswordMinimumLength": "මුරපදය අවම වශයෙන් අක්ෂර 6 ක් විය යුතුය",
		"ResetPasswordPasswordMismatch":      "මුර පද ගැලපෙන්නේ නැත",
		"TeamInviteHeading":                  "කණ්ඩායමේ සාමාජිකයෙකුට ආරාධනා කරන්න",
		"TeamInviteDescription":              "ඔබේ සංවිධානයට සම්බන්ධ වීමට කණ්ඩායම් සාමාජිකයෙකුට ආරාධනා කරන්න",
		"TeamInviteSubmitButton":             "සාමාජිකයාට ආරාධනා කරන්න",
		"TeamInviteFirstNameRequired":        "මුල් නම අවශ්ය වේ",
		"TeamInviteLastNameRequired":         "අවසාන නම අවශ්ය වේ",
		"TeamInviteEmailRequired":            "විද්‍යුත් තැපෑල අවශ්‍යයි",
		"TeamInviteEmailInvalid":             "විද්‍යුත් තැපෑල වලංගු නොවේ",
	},
	"ta": {
		"SignUpHeading":                      "உங்கள் சமூக அமைப்பில் பதிவு செய்யவும்",
		"SignUpDescription":                  "பொருளாதார நெருக்கடியின் போது இலங்கையின் குடும்பங்களின் அத்தியாவசிய உணவுத் தேவைகளுக்கு உதவும் சமூக அமைப்பா நீங்கள்? எங்கள் தரவுத்தளத்தில் சேர பதிவு செய்யவும்.",
		"SignUpLearnMore":                    "திட்டத்தைப் பற்றி மேலும் அறிக",
		"FieldsOrganizationName":             "நிறுவன பெயர்",
		"FieldsFullName":                     "முழு பெயர்",
		"FieldsFirstName":                    "முதல் பெயர்",
		"FieldsLastName":                     "கடைசி பெயர்",
		"FieldsEmail":                        "மின்னஞ்சல்",
		"FieldsContact":                      "தொடர்பு எண்",
		"FieldsPassword":                     "கடவுச்சொல்",
		"FieldsPasswordConfirm":              "உங்கள் கடவுச்சொல்லை உறுதிப்படுத்தவும்",
		"FieldsUserRole":                     "பயனர் பங்கு",
		"SignUpText":                         "பதிவு செய்யவும்",
		"SignInText":                         "உள்நுழையவும்",
		"AlreadyHaveAnAccountText":           "ஏற்கனவே ஒரு கணக்கு உள்ளதா?",
		"DontHaveAnAccountText":              "கணக்கு இல்லையா?",
		"SignInHeading":                      "உங்கள் நிறுவனத்தில் உள்நுழையவும்",
		"SignInDescription":                  "பொருளாதார நெருக்கடியின் போது இலங்கையின் குடும்பங்களின் அத்தியாவசிய உணவுத் தேவைகளுக்கு உதவும் சமூக அமைப்பா நீங்கள்? எங்கள் தரவுத்தளத்தில் சேர பதிவு செய்யவும்.",
		"ForgotPassword":                     "உங்கள் கடவுச்சொல்லை மறந்து விட்டீர்களா?",
		"ForgotPasswordHeading":              "கடவுச்சொல்லை மறந்துவிட்டீர்களா",
		"ResetPasswordText":                  "கடவுச்சொல்லை மீட்டமைக்க",
		"ResetPasswordHeading":               "கடவுச்சொல்லை மீட்டமைக்க",
		"SignUpOrganizationNameRequired":     "அமைப்பின் பெயர் தேவை",
		"SignUpFirstNameRequired":            "முதல் பெயர் தேவை",
		"SignUpLastNameRequired":             "கடைசி பெயர் தேவை",
		"SignUpEmailRequired":                "மின்னஞ்சல் தேவை",
		"SignUpEmailInvalid":                 "மின்னஞ்சல் தவறானது",
		"SignUpContactNumberRequired":        "தொடர்பு எண் தேவை",
		"SignUpMinimumLength":                "கடவுச்சொல் குறைந்தது 6 எழுத்துகளாக இருக்க வேண்டும்",
		"SignUpPasswordMismatch":             "கடவுச்சொற்கள் பொருந்தவில்லை",
		"SignInEmailRequired":                "மின்னஞ்சல் தேவை",
		"SignInPasswordRequired":             "கடவுச்சொல் தேவை",
		"ForgotPasswordEmailRequired":        "மின்னஞ்சல் தேவை",
		"ResetPasswordPasswordMinimumLength": "கடவுச்சொல் குறைந்தது 6 எழுத்துகளாக இருக்க வேண்டும்",
		"ResetPasswordPasswordMismatch":      "கடவுச்சொற்கள் பொருந்தவில்லை",
		"TeamInviteHeading":                  "குழு உறுப்பினரை அழைக்கவும்",
		"TeamInviteDescription":              "உங்கள் நிறுவனத்தில் சேர குழு உறுப்பினரை அழைக்கவும்",
		"TeamInviteSubmitButton":             "உறுப்பினரை அழைக்கவும்",
		"TeamInviteFirstNameRequired":        "முதல் பெயர் தேவை",
		"TeamInviteLastNameRequired":         "கடைசி பெயர் தேவை",
		"TeamInviteEmailRequired":            "மின்னஞ்சல் தேவை",
		"TeamInviteEmailInvalid":             "மின்னஞ்சல் தவறானது",
	},
}
