package content

import "github.com/nkuebler/portfolio/internal/gallery"

// Default returns the built-in site content.
func Default() *Site {
	return &Site{
		Title:   "Nick Kuebler",
		Owner:   "Nick Kuebler",
		Tagline: "Designer & engineer focused on aesthetic systems, physical products, and clean digital experiences.",
		Nav: []NavItem{
			{Label: "Portfolio", Href: "index.html"},
			{Label: "Concepts", Href: "concepts.html"},
			{Label: "About", Href: "about.html"},
			{Label: "Contact", Href: "contact.html"},
		},
		Projects: defaultProjects(),
		Concepts: defaultConcepts(),
		About: About{
			Photo:    "/nick.jpeg",
			PhotoAlt: "Nick working in the shop",
			Paragraphs: []string{
				"I'm Nick, a designer & engineer focused on physical products and clean digital experiences. I enjoy building products that are aesthetically pleasing, address real user needs, and improve quality of life. When I'm not working, I'm competing gymnastics for Stanford, playing board games with friends, and mixing music.",
				"This site is a home for selected work: product design, prototyping, and systems thinking. If you want to collaborate or talk through a project, hit Contact.",
			},
			Footnote: "Based in the US · Open to new projects",
		},
		Contact: Contact{
			Email: "nkuebler@stanford.edu",
			Social: []Link{
				{Label: "Instagram", URL: "https://www.instagram.com/nkuebs/"},
				{Label: "LinkedIn", URL: "https://www.linkedin.com/in/nicolas-k-4246b7275/"},
			},
		},
		Resume: Resume{Heading: "Resume"},
	}
}

func defaultProjects() []Project {
	return []Project{
		{
			Slug:     "ringallets",
			Title:    "Ringallets",
			Subtitle: "Rings training tool",
			Image:    "/work/ringallets.png",
			Summary:  "A gymnastics training tool that bridges the gap between parallettes and rings by preserving correct mechanics without introducing instability.",
			Hero:     &Figure{Src: "/work/ringallets-final.png", Alt: "Ringallets final product", Caption: "Final Ringallets configuration"},
			Sections: []Section{
				{Heading: "Problem", Body: "Rings are one of the most effective tools for developing upper-body strength, but their instability makes them inaccessible for many athletes."},
				{
					Heading: "Solution",
					Body:    "Ringallets replicate standard ring spacing while maintaining parallette stability.",
					Figures: []Figure{
						{Src: "/work/ringallets-sketch.png", Alt: "Sketch", Caption: "Early sketches"},
						{Src: "/work/ringallets-cad.png", Alt: "CAD", Caption: "CAD model"},
						{Src: "/work/ringallets-prototype.png", Alt: "Prototype", Caption: "Physical prototype"},
					},
				},
				{
					Heading: "Process",
					Body:    "- Failure point analysis\n- Geometry locking\n- Prototype iteration\n- Real athlete testing",
					Figures: []Figure{
						{Src: "/work/ringallets-testing1.png", Alt: "Testing 1", Caption: "Stability testing"},
						{Src: "/work/ringallets-testing2.png", Alt: "Testing 2", Caption: "Iteration feedback"},
					},
				},
				{
					Heading: "Takeaways",
					Body:    "The right constraints unlock accessibility.",
					Figures: []Figure{{Src: "/work/ringallets-final-alt.png", Alt: "Final assembly", Caption: "Final components"}},
				},
			},
		},
		{
			Slug:     "watershield",
			Title:    "WaterShield",
			Subtitle: "Longboard wheel fender",
			Image:    "/work/watershield.png",
			Summary:  "A longboard wheel \"fender\" attachment designed to prevent water from spraying up onto the rider in wet conditions.",
			Sections: []Section{
				{Heading: "Problem", Body: "Riding a longboard in the rain quickly soaks the rider because the wheels kick water upward. Existing solutions were either bulky, not designed for longboards, or inconvenient to install/remove."},
				{Heading: "Solution", Body: "WaterShield is a compact, attachable wheel cover that blocks splash-up at the source. The design focuses on a secure mount, simple installation, and a form factor that fits common longboard setups without getting in the way of riding."},
				{Heading: "Testing", Figures: []Figure{{Src: "/work/watershield-testing1-new.png", Alt: "WaterShield testing"}}},
				{Heading: "Demo", Video: "/work/watershield-demo.mp4"},
				{Heading: "What I did", Body: "- Defined the user pain point and usage scenarios\n- Designed the attachment concept and mounting approach\n- Iterated shape and fit for wheel clearance and durability"},
				{Heading: "Takeaways", Body: "Small accessories succeed or fail on install friction. The design had to feel immediately worth using the moment conditions turned wet."},
			},
		},
		{
			Slug:     "watershield-figma",
			Title:    "WaterShield Figma",
			Subtitle: "Purchase flow prototype",
			Image:    "/work/watershield-figma.png",
			Summary:  "A Figma website concept designed to showcase WaterShield.",
			Sections: []Section{
				{Heading: "Goal", Body: "Present the product clearly, explain the problem in seconds, and make buying feel effortless."},
				{Heading: "Key decisions", Body: "- Strong hero image and single-sentence value prop"},
				{Heading: "What I did", Body: "- Designed site layout and hierarchy"},
				{Heading: "Demo", Video: "/work/watershield-figma-demo.mp4"},
				{Heading: "Takeaways", Body: "For a product like this, clarity beats persuasion."},
			},
		},
	}
}

func defaultConcepts() []gallery.Entry {
	return []gallery.Entry{
		{Title: "DJ Glasses", Subtitle: "Glasses that pulse to the song's instrumental", Thumb: "/concepts/djglasses1.png", Media: gallery.MediaVideo, MediaSrc: "/concepts/djglassesloop.mp4"},
		{Title: "Conversational Plant", Subtitle: "Pot with soil sensors + tiny thermal printer that prints receipts like \"I'm thirsty\"", Thumb: "/concepts/plantr1.png", Media: gallery.MediaImage, MediaSrc: "/concepts/plantr.png"},
		{Title: "Haptic Direction Belt", Subtitle: "Subtle vibrations guide you to a pin location", Thumb: "/concepts/hapticbelt.png", Media: gallery.MediaImage, MediaSrc: "/concepts/hapticbelt.png"},
		{Title: "Lightning Connection Table", Subtitle: "A table with conductive veins of lightning that briefly arc when someone touches two points", Thumb: "/concepts/tablelightning.png", Media: gallery.MediaVideo, MediaSrc: "/concepts/lightningtableaction.mp4", Fit: gallery.FitContain},
		{Title: "Intuitive Fridge", Subtitle: "Interior fridge lighting that gradually darkens as food ages", Thumb: "/concepts/fridge1.png", Media: gallery.MediaImage, MediaSrc: "/concepts/fridgeopen.png", Fit: gallery.FitContain},
		{Title: "Posture Chair", Subtitle: "Each person who sits leaves a silhouette of their posture", Thumb: "/concepts/chairproj1.png", Media: gallery.MediaImage, MediaSrc: "/concepts/chairprojwoman.png"},
		{Title: "Athlete recovery gum", Subtitle: "Gum sticks made with recovery-forward ingredients like turmeric, vitamin C, and tart cherry.", Thumb: "/concepts/gumstyxclosed.png", Media: gallery.MediaImage, MediaSrc: "/concepts/gumopened.png"},
		{Title: "Living Album Cover", Subtitle: "A wall display that creates living album art from the music you play", Thumb: "/concepts/musicframe.png", Media: gallery.MediaImage, MediaSrc: "/concepts/musicframe.png"},
		{Title: "Micro-LED Freckles", Subtitle: "temporary freckle stickers that glow like constellations in low light", Thumb: "/concepts/freckles.png", Media: gallery.MediaImage, MediaSrc: "/concepts/womanfreckles.png"},
		{Title: "Companion Bench", Subtitle: "A bench that warms only when two strangers sit on it", Thumb: "/concepts/bench.png", Media: gallery.MediaImage, MediaSrc: "/concepts/bench glow.png"},
		{Title: "Think Tank", Subtitle: "A pod with sensory deprivation technologies", Thumb: "/concepts/tank.png", Media: gallery.MediaImage, MediaSrc: "/concepts/tankbg.png", Fit: gallery.FitContain},
		{Title: "Drone Shepherd", Subtitle: "Drone that herds sheep", Thumb: "/concepts/dogdrone.png", Media: gallery.MediaImage, MediaSrc: "/concepts/dognsheep.png"},
	}
}
