package taxonomy

// Default keyword data. configs/taxonomy.yaml carries the same sets for
// deployments that want to tune them; Default keeps the pipeline usable
// without a file.

var defaultUpstream = []string{
	"exploration", "drilling", "seismic", "rig", "deepwater",
	"offshore", "well", "reservoir", "discovery", "production",
	"e&p", "upstream", "oilfield", "gasfield", "shale", "fracking",
	"hydrocarbon", "reserves", "geology", "exploration license",
	"drilling permit", "finding", "appraisal", "development", "subsea",
	"crude", "quota", "oeuk", "offshore energies",
	"electrolyzer", "electrolysis", "green hydrogen production", "blue hydrogen production",
	"carbon capture", "geothermal", "wind farm", "solar farm",
	"takeover", "merger", "acquisition", "deal",
	"oil well", "gas well", "upstream sector", "production rates",
	"field development", "unconventional resources", "drilling rig",
	"oil and gas leases", "petroleum exploration", "hydrocarbon exploration",
}

var defaultMidstream = []string{
	"pipeline", "transport", "lng", "storage", "terminal", "distribution",
	"gasification", "shipping", "infrastructure", "transmission", "transportation",
	"midstream", "compressor station", "pump station", "tanker", "carrier", "regasification",
	"gathering", "export terminal", "import terminal", "hub", "network", "capacity",
	"processing plant", "gas processing", "oil transport", "gas transport",
	"gas storage", "crude storage", "logistics", "distribution network",
	"transmission lines", "export facilities", "import facilities",
	"bunker fuel", "hydrogen pipeline", "hydrogen storage", "ammonia transport",
	"hydrogen carrier", "ccus",
}

var defaultDownstream = []string{
	"refinery", "petrol", "diesel", "retail", "marketing", "fuel", "processing",
	"lubricants", "petrochemicals", "sales", "consumption", "pricing",
	"downstream", "gasoline", "jet fuel", "kerosene", "asphalt", "bitumen",
	"nylon", "plastics", "chemical plant", "fuel station", "filling station",
	"demand", "margins", "end user", "power generation", "power plant",
	"industrial feedstock", "buy", "market", "sale",
	"hydrogen fuel cell", "hydrogen vehicles", "green hydrogen application",
	"industrial hydrogen use", "decarbonization", "energy efficiency", "heating",
	"cooking", "powering homes", "powering cars", "distillates", "refined products",
	"fuel oil", "gas oil", "naphtha", "propane", "butane", "resins", "polymers",
	"fertilizers", "specialty chemicals", "fuel economy", "retail prices",
	"wholesale prices", "customer", "supply chain management",
}

var defaultCoreExtra = []string{
	"oil", "gas", "petroleum", "energy sector", "fossil fuel", "natural gas",
	"oilpatch", "energy market", "oil prices", "gas prices", "barrel",
	"exploration & production", "petrochemical plant", "oil rig", "gas field",
	"oilfield", "energy transition", "carbon capture", "hydrogen", "lng market",
	"oil market", "gas market", "crude oil", "natural gas liquids",
	"ngl", "hydrocarbons", "petrochemical complex", "energy policy", "regulations",
	"opec",
}

var defaultIrrelevant = []string{
	"ad", "sponsored", "buy now", "shop now", "discount",
	"coupon", "best deals", "burner",
	"cooking", "pan", "stove", "grill", "bbq",
	"shopping", "supermarket", "fashion", "food", "recipe",
	"restaurant", "clothing", "apple", "customers",
	"tourism", "travel", "airline", "hotel",
	"entertainment", "movie", "music", "sports", "gaming",
	"health", "medical", "pharmaceutical", "vaccine",
	"education", "university", "school", "student", "teacher", "election",
	"crime", "police", "court", "justice", "space", "astronomy",
	"weather", "natural disaster", "storm", "flood", "earthquake",
	"real estate", "housing", "mortgage", "software", "app", "startup",
	"device", "chip", "cybersecurity", "agriculture", "metals",
	"minerals", "finance", "banking", "loans", "company earnings",
	"quarterly results", "bonds", "blockchain", "football", "basketball",
	"cricket", "olympics", "world cup", "championship",
	"celebrity", "gossip", "tv show", "film", "art", "museum", "gallery", "fashion week",
	"ecommerce", "online store", "gaming console",
	"health care", "doctor", "hospital", "therapy", "mental health", "fitness", "diet",
	"schooling", "curriculum", "campus", "phd", "master's",
	"verdict", "trial", "sentencing", "police report", "investigation",
	"galaxy", "universe", "planet", "telescope", "astronaut", "nasa", "spacex",
	"housing market", "property", "rent", "landlord", "tenant", "real estate agent",
	"data science", "cloud computing", "fintech", "biotech", "robotics", "gadgets", "apps",
	"supply chain disruption", "inflation", "interest rates", "central bank", "recession",
	"gdp", "market cap", "forex", "commodities trading", "hedge fund",
	"private equity", "venture capital", "mergers and acquisitions", "ipo", "dividends",
	"portfolio", "risk management", "financial planning", "credit", "audit",
	"audit report", "accounting", "balance sheet", "income statement", "cash flow", "earnings call",
}

var defaultJunkDomains = []string{
	"amazon.com", "ebay.com", "walmart.com", "etsy.com", "aliexpress.com",
	"bestbuy.com", "target.com", "indiamart.com", "alibaba.com", "shopee.com",
	"flipkart.com", "myntra.com", "snapdeal.com", "zomato.com",
	"swiggy.com", "uber.com", "airbnb.com", "booking.com", "expedia.com",
	"tripadvisor.com", "yelp.com", "glassdoor.com", "indeed.com", "naukri.com",
	"monster.com", "upwork.com", "fiverr.com", "freelancer.com",
	"coursera.org", "edx.org", "udemy.com", "skillshare.com", "khanacademy.org",
	"youtube.com", "dailymotion.com", "vimeo.com", "tiktok.com", "pinterest.com",
	"facebook.com", "instagram.com", "linkedin.com", "twitter.com", "reddit.com",
	"wikipedia.org", "investopedia.com", "britannica.com", "dictionary.com",
	"thesaurus.com", "imdb.com", "rottentomatoes.com", "metacritic.com",
	"espn.com", "cricbuzz.com", "fandom.com", "ign.com", "gamespot.com",
	"steamcommunity.com", "github.com", "stackoverflow.com", "medium.com",
	"dev.to", "geeksforgeeks.org", "w3schools.com", "tutorialspoint.com",
	"quora.com", "answers.com", "cnet.com", "zdnet.com",
	"techcrunch.com", "theverge.com", "engadget.com", "arstechnica.com",
	"macrumors.com", "gsmarena.com", "xda-developers.com", "androidcentral.com",
	"windowscentral.com", "lifehacker.com", "howtogeek.com", "makeuseof.com",
	"healthline.com", "webmd.com", "mayoclinic.org", "nih.gov", "cdc.gov",
	"who.int", "un.org", "gov.uk", "usa.gov", "canada.ca", "ec.europa.eu",
	"indiatimes.com", "timesofindia.indiatimes.com", "ndtv.com", "zeenews.india.com",
	"hindustantimes.com", "deccanherald.com", "thehindu.com", "moneycontrol.com",
	"businesstoday.in", "livemint.com", "economictimes.indiatimes.com",
	"cnbc.com", "bloomberg.com", "apnews.com", "afp.com",
	"bbc.com", "cnn.com", "foxnews.com", "nytimes.com", "wsj.com",
	"theguardian.com", "washingtonpost.com", "ft.com", "economist.com",
	"forbes.com", "businessinsider.com", "techradar.com",
	"investing.com", "fxstreet.com", "dailyfx.com", "babypips.com",
	"google.com/search", "google.com/finance", "google.com/news", "news.google.com",
	"bing.com", "duckduckgo.com", "yahoo.com", "gmail.com",
	"outlook.live.com", "protonmail.com", "icloud.com", "apple.com", "microsoft.com",
	"oracle.com", "ibm.com", "salesforce.com", "sap.com", "adobe.com",
	"cisco.com", "dell.com", "hp.com", "lenovo.com", "samsung.com", "lg.com",
	"sony.com", "nintendo.com", "playstation.com", "xbox.com",
	"netflix.com", "hulu.com", "disneyplus.com", "primevideo.com", "spotify.com",
	"pandora.com", "soundcloud.com", "bandcamp.com",
	"patreon.com", "kickstarter.com", "indiegogo.com", "gofundme.com",
	"change.org", "greenpeace.org", "wwf.org", "amnesty.org",
	"redcross.org", "unicef.org", "unesco.org",
	"wto.org", "imf.org", "worldbank.org", "federalreserve.gov",
	"ecb.europa.eu", "bankofengland.co.uk",
}

// defaultCountryOverrides are checked before the region sets, in this
// exact order. A country name beats any broader regional keyword.
var defaultCountryOverrides = []CountryOverride{
	{Keyword: "norway", Region: "Europe"},
	{Keyword: "india", Region: "India"},
	{Keyword: "saudi", Region: "Middle East"},
	{Keyword: "uae", Region: "Middle East"},
	{Keyword: "qatar", Region: "Middle East"},
	{Keyword: "iran", Region: "Middle East"},
	{Keyword: "iraq", Region: "Middle East"},
	{Keyword: "kuwait", Region: "Middle East"},
	{Keyword: "oman", Region: "Middle East"},
	{Keyword: "usa", Region: "North America"},
	{Keyword: "u.s.", Region: "North America"},
	{Keyword: "us", Region: "North America"},
	{Keyword: "canada", Region: "North America"},
	{Keyword: "mexico", Region: "North America"},
	{Keyword: "brazil", Region: "South America"},
	{Keyword: "nigeria", Region: "Africa"},
	{Keyword: "angola", Region: "Africa"},
	{Keyword: "egypt", Region: "Africa"},
	{Keyword: "china", Region: "APAC"},
	{Keyword: "japan", Region: "APAC"},
	{Keyword: "australia", Region: "APAC"},
}

var defaultRegions = []RegionSet{
	{Name: "India", Keywords: []string{
		"india", "ongc", "gail", "iocl", "reliance", "bharat petroleum", "mumbai",
		"gujarat", "delhi", "chennai", "kolkata", "bangalore", "mangalore",
		"ghats", "bay of bengal", "indian ocean", "indian", "modi",
		"oil india", "adani", "tata", "vedanta", "jiobp", "assam", "kochi",
		"vishakapatnam", "odisha", "maharashtra", "bengal", "ministry of petroleum",
		"domestic", "ahmedabad", "vadodara", "kerala", "andhra pradesh", "uttar pradesh",
		"sikkim", "himachal", "punjab", "haryana", "rajasthan", "madhya pradesh",
		"chhattisgarh", "jharkhand", "bihar", "west bengal", "goa", "karnataka",
		"tamil nadu", "telangana", "andaman",
		"lakshadweep", "puducherry", "chandigarh", "delhi ncr", "northeast india",
		"south india", "north india", "east india", "west india", "offshore india",
		"dgh", "regulator", "indian market",
	}},
	{Name: "Middle East", Keywords: []string{
		"saudi", "uae", "qatar", "iran", "iraq", "kuwait", "oman", "bahrain", "yemen",
		"syria", "lebanon", "israel", "jordan", "persian gulf", "middle east",
		"aramco", "adnco", "qp", "knpc", "opec", "gcc", "mena", "adnoc",
	}},
	{Name: "North America", Keywords: []string{
		"usa", "canada", "mexico", "united states", "north america", "gulf of mexico",
		"alaska", "texas", "alberta", "pioneer natural resources", "exxon", "chevron",
		"conocophillips", "occidental petroleum", "america", "us", "u.s.", "american",
		"permian", "eagle ford", "bakken", "marcellus", "canadian", "pemex", "us market",
		"california", "north dakota", "houston", "devon energy", "haynesville",
		"pennsylvania", "gulf of america",
	}},
	{Name: "South America", Keywords: []string{
		"brazil", "venezuela", "colombia", "argentina", "ecuador", "guyana", "suriname",
		"bolivia", "chile", "peru", "petrobras", "ecopetrol", "pdvsa", "latin america",
		"south american",
	}},
	{Name: "Europe", Keywords: []string{
		"europe", "uk", "united kingdom", "norway", "germany", "france", "italy",
		"netherlands", "russia", "eu", "european union", "north sea", "mediterranean",
		"equinor", "bp", "shell", "totalenergies", "eni", "gazprom", "poland", "spain",
		"ireland", "scotland", "denmark", "sweden", "finland", "baltic", "black sea",
		"caspian", "norwegian sea", "baku", "azerbaijan", "kazakhstan", "turkey",
		"ukraine", "eec", "european market",
	}},
	{Name: "Africa", Keywords: []string{
		"africa", "nigeria", "angola", "algeria", "libya", "egypt", "south africa",
		"ghana", "mozambique", "tanzania", "uganda", "kenya", "equatorial guinea",
		"gabon", "congo", "senegal", "ivory coast", "morocco", "tunisia", "nnpc",
		"african", "sub-saharan", "north africa",
	}},
	{Name: "APAC", Keywords: []string{
		"china", "japan", "korea", "australia", "indonesia", "malaysia", "singapore",
		"thailand", "vietnam", "philippines", "new zealand", "papua new guinea",
		"timor-leste", "brunei", "myanmar", "cambodia", "laos", "mongolia", "sri lanka",
		"bangladesh", "pakistan", "fiji", "pacific islands", "asean", "south asia",
		"east asia", "southeast asia", "oceania", "sinopec", "petronas", "pertamina", "pttep",
		"asia pacific", "asia", "koreas", "apec", "soco", "cnooc", "japex",
	}},
}

// Default returns the built-in taxonomy. The core-energy set is the
// union of the three stream sets plus general energy terms.
func Default() *Taxonomy {
	core := make([]string, 0, len(defaultUpstream)+len(defaultMidstream)+len(defaultDownstream)+len(defaultCoreExtra))
	seen := make(map[string]struct{})
	for _, group := range [][]string{defaultUpstream, defaultMidstream, defaultDownstream, defaultCoreExtra} {
		for _, k := range group {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			core = append(core, k)
		}
	}

	tax := &Taxonomy{
		CoreEnergy:       core,
		Irrelevant:       append([]string(nil), defaultIrrelevant...),
		JunkDomains:      append([]string(nil), defaultJunkDomains...),
		CountryOverrides: append([]CountryOverride(nil), defaultCountryOverrides...),
		Regions:          append([]RegionSet(nil), defaultRegions...),
		Upstream:         append([]string(nil), defaultUpstream...),
		Midstream:        append([]string(nil), defaultMidstream...),
		Downstream:       append([]string(nil), defaultDownstream...),
	}
	sanitize(tax)
	return tax
}
