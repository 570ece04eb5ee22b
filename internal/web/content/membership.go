package content

import "net/url"

type Tier struct {
	Name        string
	Price       string
	Features    []string
	Recommended bool
}

const EnterpriseTier = "Enterprise"

var Tiers = []Tier{
	{
		Name:     "Student",
		Price:    "Free",
		Features: []string{"Access to basic training materials", "Community forum access", "Monthly workshops", "Student project support"},
	},
	{
		Name:        "Professional",
		Price:       "$29/month",
		Features:    []string{"All Student features", "Advanced training courses", "Priority mentorship", "Industry certifications", "Job board access"},
		Recommended: true,
	},
	{
		Name:     EnterpriseTier,
		Price:    "Custom",
		Features: []string{"All Professional features", "Custom training programs", "Dedicated support", "Team collaboration tools", "Corporate workshops"},
	},
}

var MemberBenefits = []Feature{
	{"Expert Training", "Access to premium cybersecurity courses and workshops"},
	{"Network Growth", "Connect with industry professionals and like-minded individuals"},
	{"Certification", "Earn certificates upon completing training programs"},
	{"Career Growth", "Access to job opportunities and career guidance"},
}

var JoinFAQ = []Question{
	{"What's included in the free account?", "The free student account includes access to basic training materials, community forums, monthly workshops, and student project support. It's perfect for beginners starting their cybersecurity journey."},
	{"Can I upgrade my membership later?", "Yes, you can upgrade your membership at any time. Your benefits will be immediately upgraded to the new tier, and you'll only be charged the difference in price."},
	{"What payment methods do you accept?", "We accept all major credit cards, PayPal, and bank transfers for Professional memberships. Enterprise solutions can be arranged through our sales team."},
	{"Is there a minimum commitment period?", "No, you can cancel your membership at any time. For Professional memberships, you'll continue to have access until the end of your current billing period."},
}

// FindTier looks a tier up by name.
func FindTier(name string) (Tier, bool) {
	for _, t := range Tiers {
		if t.Name == name {
			return t, true
		}
	}
	return Tier{}, false
}

// TierDestination is where choosing a tier leads: Enterprise goes to the
// contact form, every other tier to registration.
func TierDestination(name string) string {
	if name == EnterpriseTier {
		return "/contact?enquiry=enterprise"
	}
	return "/register?membership=" + url.QueryEscape(name)
}
