// Package content holds the portal's static copy: navigation, program
// pages, training courses and membership tiers.
package content

type NavItem struct {
	Name         string
	Path         string
	RequiresAuth bool
}

var Nav = []NavItem{
	{Name: "Home", Path: "/"},
	{Name: "About", Path: "/about"},
	{Name: "Training", Path: "/training"},
	{Name: "News", Path: "/news"},
	{Name: "Projects", Path: "/projects"},
	{Name: "Gallery", Path: "/gallery"},
	{Name: "Contact", Path: "/contact"},
	{Name: "Security Tools", Path: "/security-tools", RequiresAuth: true},
}

// NavFor hides auth-only entries from visitors who are not signed in.
func NavFor(authenticated bool) []NavItem {
	out := make([]NavItem, 0, len(Nav))
	for _, item := range Nav {
		if item.RequiresAuth && !authenticated {
			continue
		}
		out = append(out, item)
	}
	return out
}

type Feature struct {
	Title       string
	Description string
}

type Stat struct {
	Value string
	Label string
	Note  string
}

type Event struct {
	Date    string
	Title   string
	Speaker string
	Type    string
}

// Showcase is a secondary card list on a program page: training modules,
// tools or projects.
type Showcase struct {
	Name        string
	Description string
	Meta        string
	Tags        []string
}

type Link struct {
	Label string
	URL   string
}

type Program struct {
	Slug          string
	Title         string
	Tagline       string
	Community     Link
	Features      []Feature
	ShowcaseTitle string
	Showcase      []Showcase
	Stats         []Stat
	Events        []Event
	CallToAction  string
}

var Programs = map[string]Program{
	"sentinels": {
		Slug:    "sentinels",
		Title:   "Sentinels",
		Tagline: "Cyber Awareness & Defense - Empowering members with cybersecurity knowledge and defense strategies to protect against digital threats.",
		Community: Link{Label: "Join our WhatsApp Group", URL: "https://chat.whatsapp.com/Ih2nzEVTMP7ImcemhWrVc"},
		Features: []Feature{
			{"Daily Cyber Tips", "Stay updated with quick, actionable security tips to enhance your online safety."},
			{"Cyber Awareness Campaigns", "Access educational content and discussions on trending cybersecurity topics."},
			{"Hands-on Learning", "Watch video tutorials on security best practices and practical defense strategies."},
			{"CTF Challenges", "Participate in Capture The Flag challenges to learn about security vulnerabilities."},
			{"Expert Sessions & Webinars", "Learn from industry professionals sharing insights on cybersecurity trends."},
			{"Resource Hub", "Access downloadable security guides, articles, and recommended tools."},
		},
		Events: []Event{
			{Date: "April 15, 2025", Title: "Phishing Defense Workshop", Speaker: "Perry Essandoh", Type: "Workshop"},
			{Date: "April 20, 2025", Title: "Advanced CTF Challenge", Speaker: "Karim Nurudeen", Type: "Challenge"},
			{Date: "April 25, 2025", Title: "Zero Trust Security", Speaker: "Mrs. Effuah Bentum", Type: "Webinar"},
		},
		CallToAction: "Stay informed and help keep our community one step ahead of digital threats.",
	},
	"cyber-guardians": {
		Slug:    "cyber-guardians",
		Title:   "Cyber Guardians",
		Tagline: "The first line of defense in our community, dedicated to protecting and educating members about cybersecurity.",
		Features: []Feature{
			{"Community Protection", "Lead the first line of defense in protecting our community from cyber threats."},
			{"Security Education", "Conduct workshops and training sessions on cybersecurity best practices."},
			{"Threat Prevention", "Identify and prevent potential security risks before they become threats."},
			{"Knowledge Sharing", "Create and maintain educational resources for the community."},
		},
		ShowcaseTitle: "Training Modules",
		Showcase: []Showcase{
			{Name: "Security Fundamentals", Meta: "4 weeks · Beginner", Tags: []string{"Basic Security Concepts", "Risk Assessment", "Security Tools", "Incident Response"}},
			{Name: "Advanced Protection", Meta: "6 weeks · Intermediate", Tags: []string{"Threat Analysis", "Security Architecture", "Defense Strategies", "Security Auditing"}},
			{Name: "Leadership Training", Meta: "3 weeks · Advanced", Tags: []string{"Team Management", "Crisis Response", "Strategic Planning", "Communication"}},
		},
		Stats: []Stat{
			{Value: "500+", Label: "Community Impact", Note: "Members Protected"},
			{Value: "50+", Label: "Training Sessions", Note: "Workshops Conducted"},
			{Value: "98%", Label: "Success Rate", Note: "Threat Prevention"},
		},
		CallToAction: "Join our elite team of cybersecurity defenders and help protect our community from digital threats.",
	},
	"threat-hunters": {
		Slug:    "threat-hunters",
		Title:   "Threat Hunters",
		Tagline: "Elite security analysts dedicated to identifying, tracking, and neutralizing cyber threats before they become incidents.",
		Community: Link{Label: "Join our WhatsApp Group", URL: "https://chat.whatsapp.com/Lqb92t2tjYuGh44k85bQpE"},
		Features: []Feature{
			{"Threat Detection", "Advanced monitoring and detection of potential security threats."},
			{"Incident Response", "Rapid response and mitigation of identified security incidents."},
			{"Vulnerability Assessment", "Systematic evaluation of security weaknesses and risks."},
			{"Security Analysis", "In-depth analysis of security incidents and attack patterns."},
		},
		ShowcaseTitle: "Our Tools",
		Showcase: []Showcase{
			{Name: "Network Monitoring", Description: "Real-time network traffic analysis and anomaly detection", Tags: []string{"Packet Analysis", "Traffic Monitoring", "Alert System", "Log Analysis"}},
			{Name: "Threat Intelligence", Description: "Collection and analysis of threat data from multiple sources", Tags: []string{"Data Collection", "Pattern Recognition", "Risk Assessment", "Threat Scoring"}},
			{Name: "Incident Management", Description: "Comprehensive incident tracking and response system", Tags: []string{"Case Management", "Response Coordination", "Documentation", "Analytics"}},
		},
		Stats: []Stat{
			{Value: "1000+", Label: "Threats Detected", Note: "Successfully identified and analyzed"},
			{Value: "99.9%", Label: "Response Rate", Note: "Average incident response time"},
			{Value: "24/7", Label: "Monitoring", Note: "Continuous security surveillance"},
		},
		CallToAction: "Be part of an elite team dedicated to protecting our digital infrastructure from emerging threats.",
	},
	"cyber-innovators": {
		Slug:    "cyber-innovators",
		Title:   "Cyber Innovators",
		Tagline: "Building the next generation of cybersecurity solutions through innovation and technology.",
		Community: Link{Label: "Join our WhatsApp Group", URL: "https://chat.whatsapp.com/FF8UO80Ktk8DLIjeCKnXbg"},
		Features: []Feature{
			{"Security Tools", "Developing cutting-edge cybersecurity solutions and tools."},
			{"Research & Development", "Exploring new approaches to cybersecurity challenges."},
			{"Custom Solutions", "Building tailored security solutions for specific needs."},
			{"Innovation Lab", "Testing and implementing new security technologies."},
		},
		ShowcaseTitle: "Current Projects",
		Showcase: []Showcase{
			{Name: "Threat Detection System", Meta: "In Development", Description: "AI-powered system for early threat detection", Tags: []string{"Python", "Machine Learning", "Cloud Computing"}},
			{Name: "Security Dashboard", Meta: "Beta Testing", Description: "Unified interface for security monitoring", Tags: []string{"React", "Node.js", "GraphQL"}},
			{Name: "Vulnerability Scanner", Meta: "Released", Description: "Automated security assessment tool", Tags: []string{"Go", "Docker", "REST API"}},
		},
		Stats: []Stat{
			{Value: "20+", Label: "Tools Developed", Note: "Security solutions created"},
			{Value: "5000+", Label: "Active Users", Note: "Using our solutions"},
			{Value: "10+", Label: "Research Papers", Note: "Published findings"},
		},
		CallToAction: "Help shape the future of cybersecurity through innovation and technology.",
	},
	"ambassadors": {
		Slug:    "ambassadors",
		Title:   "Cyberhouse Ambassadors",
		Tagline: "Representing and growing the Cyberhouse community through outreach, events, and partnerships.",
		Community: Link{Label: "Join our WhatsApp Group", URL: "https://chat.whatsapp.com/CdOpw8NVIkq3HGtLOCH2lV"},
		Features: []Feature{
			{"Community Building", "Growing and nurturing the Cyberhouse community."},
			{"Outreach Programs", "Connecting with organizations and institutions."},
			{"Awareness Campaigns", "Promoting cybersecurity awareness and education."},
			{"Event Organization", "Planning and executing community events."},
		},
		Events: []Event{
			{Date: "October 2025", Title: "Cybersecurity Awareness Month", Type: "Campaign"},
			{Date: "September 2025", Title: "Tech Career Fair", Type: "Fair"},
			{Date: "August 2025", Title: "Community Hackathon", Type: "Hackathon"},
		},
		Stats: []Stat{
			{Value: "10,000+", Label: "Community Members", Note: "Engaged and active"},
			{Value: "100+", Label: "Events Organized", Note: "Successfully executed"},
			{Value: "50+", Label: "Partner Organizations", Note: "Strong collaborations"},
		},
		CallToAction: "Help us grow the Cyberhouse community and make a lasting impact in cybersecurity education.",
	},
}

// ProgramSlugs lists the program pages in menu order.
var ProgramSlugs = []string{"sentinels", "cyber-guardians", "threat-hunters", "cyber-innovators", "ambassadors"}

type Mentor struct {
	Name      string
	Role      string
	Expertise []string
	Task      string
}

var Mentors = []Mentor{
	{Name: "Nana Kweku Baah", Role: "Developer", Expertise: []string{"Tool Development", "Cybersecurity", "Scripting"}, Task: "Assist the Cyber Innovators with developing or refining a basic cybersecurity tool idea. Guide members with scripting or tool planning."},
	{Name: "Efua Bentum", Role: "Head of Content Creators & Public Speaking", Expertise: []string{"Content Creation", "Public Speaking", "Training"}, Task: "Support the Sentinels in preparing content. Also help with content review and delivery quality."},
	{Name: "Karim Nurudeen", Role: "Head of Developers", Expertise: []string{"AI Development", "Networking", "Web and Database Administration"}, Task: "Oversee the AI Innovators, assist in automation and provide input and support for technical feasibility."},
	{Name: "Dwayne Eshun", Role: "Developer", Expertise: []string{"Security Tools", "Penetration Tester", "Technical Training"}, Task: "Help Threat Hunters with decode mini challenges and tool discovery. Provide tech help and explanations where needed."},
	{Name: "Ebenezar Boadu Tetteh", Role: "Marketing Manager", Expertise: []string{"Marketing Strategy", "Brand Development", "Community Outreach"}, Task: "Oversee marketing initiatives and brand development for Cyberhouse."},
	{Name: "Johua Taigo", Role: "Leader", Expertise: []string{"Team Leadership", "Community Building"}, Task: "Oversees cyberhouse activities."},
	{Name: "Perry Essandoh", Role: "Chief Executive Officer", Expertise: []string{"Team Leadership", "Community Building"}, Task: "Oversees cyberhouse activities."},
}

type Course struct {
	Title       string
	Description string
	Duration    string
	Level       string
	Topics      []string
}

var Courses = []Course{
	{
		Title:       "Cybersecurity Awareness & Ethical Hacking",
		Description: "Learn the fundamentals of cybersecurity and ethical hacking techniques.",
		Duration:    "12 weeks",
		Level:       "Beginner to Intermediate",
		Topics:      []string{"Introduction to Cybersecurity", "Network Security Basics", "Ethical Hacking Methodology", "Web Application Security", "Malware Analysis"},
	},
	{
		Title:       "Graphic Design & Video Editing",
		Description: "Master the art of digital design and video production.",
		Duration:    "8 weeks",
		Level:       "All Levels",
		Topics:      []string{"Design Principles", "Adobe Creative Suite", "Video Editing Techniques", "Motion Graphics", "Project Portfolio"},
	},
	{
		Title:       "Cyber Threat Analysis & Digital Forensics",
		Description: "Develop skills in threat detection and digital investigation.",
		Duration:    "16 weeks",
		Level:       "Intermediate to Advanced",
		Topics:      []string{"Threat Intelligence", "Incident Response", "Digital Forensics Tools", "Log Analysis", "Case Studies"},
	},
}

type SubGroup struct {
	Name        string
	Path        string
	Description string
}

var SubGroups = []SubGroup{
	{Name: "Cyber Guardians", Path: "/cyber-guardians", Description: "Educate & protect against cyber threats, forming the first line of defense in our community."},
	{Name: "Threat Hunters", Path: "/threat-hunters", Description: "Investigate and analyze attacks, staying ahead of emerging cyber threats."},
	{Name: "Cyber Innovators", Path: "/cyber-innovators", Description: "Build cutting-edge cybersecurity solutions and tools for the community."},
	{Name: "Cyber Sentinels", Path: "/sentinels", Description: "Report security news & trends, keeping our community informed and prepared."},
	{Name: "Cyberhouse Ambassadors", Path: "/ambassadors", Description: "Expand and grow the community, spreading cybersecurity awareness."},
}

var Impact = []Stat{
	{Value: "500+", Label: "Active Members"},
	{Value: "50+", Label: "Training Sessions"},
	{Value: "100+", Label: "Projects Completed"},
	{Value: "20+", Label: "Partner Companies"},
}

var Highlights = []Feature{
	{"Expert Training", "Learn from industry professionals and gain practical cybersecurity skills."},
	{"Strong Community", "Join a network of like-minded individuals passionate about cybersecurity."},
	{"Real-World Projects", "Work on actual cybersecurity challenges and build your portfolio."},
}

type Question struct {
	Question string
	Answer   string
}

type Practice struct {
	Title string
	Tips  []string
}

var Practices = []Practice{
	{Title: "Password Security", Tips: []string{"Use unique passwords for each account", "Include numbers, symbols, and mixed case letters", "Make passwords at least 12 characters long", "Avoid personal information in passwords"}},
	{Title: "Email Security", Tips: []string{"Enable two-factor authentication", "Be cautious of unexpected attachments", "Verify sender addresses carefully", "Don't click suspicious links"}},
	{Title: "General Safety", Tips: []string{"Keep software up to date", "Use a password manager", "Regular security audits", "Backup important data"}},
}

var BreachCheckerURL = "https://haveibeenpwned.com/"

type ContactInfo struct {
	Email    string
	Phone    string
	Location string
	Social   []Link
}

var Contact = ContactInfo{
	Email:    "cyberhouse008@gmail.com",
	Phone:    "+233 -208394038",
	Location: "ACCRA-GHANA",
	Social: []Link{
		{Label: "X", URL: "https://x.com/CyberHouse008"},
		{Label: "Instagram", URL: "https://www.instagram.com/cyberhouse008/"},
		{Label: "YouTube", URL: "https://www.youtube.com/@cyberhouseghana"},
		{Label: "TikTok", URL: "https://www.tiktok.com/@cyberhouseghana"},
	},
}

var ContactFAQ = []Question{
	{"How can I join Cyberhouse?", "Visit our Join page to fill out the membership application form. Once submitted, our team will review your application and get back to you within 48 hours."},
	{"What training programs do you offer?", "We offer various programs including Cybersecurity Awareness, Ethical Hacking, Graphic Design, and more. Check our Training page for the full list."},
	{"Are the training programs free?", "Some introductory courses are free for members. Premium courses have a fee, but we offer scholarships for eligible students."},
	{"How can I contribute to Cyberhouse?", "Members can contribute by submitting articles, participating in events, mentoring others, or joining our volunteer program."},
}
