package generator

// brandWords are generic commercial nouns and adjectives, highest priority
// first. Only the leading slices feed the cross-product tiers.
var brandWords = []string{
	"shield", "pro", "plus", "prime", "nest", "assure", "care", "plan",
	"protect", "safe", "trust", "cover", "secure", "total", "guard", "edge",
	"smart", "zen", "max", "elite", "core", "hub", "base", "zone",
	"spot", "box", "lab", "works", "co", "group", "solutions", "ace",
	"apex", "arc", "axis", "beam", "blaze", "bolt", "bond", "boost",
	"bridge", "bright", "burst", "cast", "champ", "charm", "chase", "choice",
	"circle", "clear", "click", "cloud", "code", "craft", "crest", "crown",
	"cube", "dash", "deck", "deep", "dive", "dock", "dome", "drive",
	"drop", "echo", "elite", "emerge", "emit", "era", "eve", "ever",
	"exact", "excel", "fame", "fast", "firm", "flash", "flow", "focus",
	"force", "forge", "form", "frame", "fresh", "front", "frost", "fuse",
	"gain", "gale", "gate", "gaze", "gear", "gift", "glide", "glow",
	"gold", "grace", "grand", "graph", "grasp", "grid", "grip", "grove",
	"grow", "guide", "halo", "harbor", "haven", "haze", "hear", "heart",
	"heavy", "helix", "hero", "high", "hill", "hint", "hive", "hold",
	"hollow", "honor", "hope", "horn", "horse", "host", "house", "hue",
	"huge", "hull", "hunt", "idea", "idle", "image", "impact", "index",
	"ink", "inn", "input", "insight", "intense", "intent", "inter", "into",
	"ion", "iron", "isle", "item", "ivory", "jade", "jail", "jam",
	"jar", "jaw", "jazz", "jet", "jewel", "join", "joint", "joke",
	"jolt", "jot", "joy", "judge", "jug", "juice", "jump", "jungle",
	"junk", "jury", "just", "keen", "keep", "key", "kick", "kid",
	"kill", "kind", "king", "kiss", "kit", "kite", "knee", "knew",
	"knife", "knight", "knit", "knob", "knock", "knot", "know", "label",
	"lack", "ladder", "lady", "lake", "lamb", "lamp", "land", "lane",
	"language", "lap", "large", "laser", "last", "late", "laugh", "launch",
	"law", "lawn", "lay", "layer", "lazy", "lead", "leaf", "league",
	"leak", "lean", "leap", "learn", "lease", "least", "leather", "leave",
	"lecture", "left", "leg", "legal", "legend", "lemon", "lend", "length",
	"lens", "lent", "less", "lesson", "let", "letter", "level", "lever",
	"levy", "lewis", "liable", "liberal", "library", "license", "lid", "lie",
	"life", "lift", "light", "like", "limb", "limit", "line", "link",
	"lion", "lip", "liquid", "list", "listen", "liter", "little", "live",
	"load", "loan", "lobby", "local", "lock", "lodge", "log", "logic",
	"lone", "long", "look", "loop", "loose", "loot", "lord", "lose",
	"loss", "lost", "lot", "loud", "lounge", "love", "low", "loyal",
	"luck", "luggage", "lump", "lunch", "lung", "lure", "lurk", "lush",
	"lust", "luxury", "lying", "machine", "mad", "made", "magic", "magnet",
	"maid", "mail", "main", "major", "make", "maker", "male", "mall",
	"mammal", "man", "manage", "mango", "manifest", "manner", "manufacturer", "many",
	"map", "marble", "march", "margin", "marine", "mark", "market", "marriage",
	"mask", "mass", "master", "match", "material", "math", "matrix", "matter",
	"maximum", "may", "maze", "meadow", "mean", "measure", "meat", "mechanic",
	"medal", "media", "melody", "melt", "member", "memory", "mention", "menu",
	"mercy", "merge", "merit", "merry", "mesh", "message", "metal", "method",
	"middle", "midnight", "milk", "million", "mimic", "mind", "minimum", "minor",
	"minute", "miracle", "mirror", "misery", "miss", "mistake", "mix", "mixed",
	"mixture", "mobile", "model", "modify", "mom", "moment", "monitor", "monkey",
	"monster", "month", "mood", "moon", "moral", "more", "morning", "moss",
	"mother", "motion", "motor", "mountain", "mouse", "move", "movie", "mow",
	"much", "muffin", "mule", "multiply", "muscle", "museum", "mushroom", "music",
	"must", "mutual", "myself", "mystery", "myth", "naive", "name", "napkin",
	"narrow", "nasty", "nation", "nature", "near", "neck", "need", "negative",
	"neglect", "neither", "nephew", "nerve", "nest", "net", "network", "neutral",
	"never", "news", "next", "nice", "night", "noble", "noise", "nominee",
	"noodle", "normal", "north", "nose", "notable", "note", "nothing", "notice",
	"novel", "now", "nuclear", "number", "nurse", "nut", "oak", "obedient",
	"object", "oblige", "obscure", "observe", "obtain", "obvious", "occur", "ocean",
	"october", "odor", "off", "offer", "office", "often", "oil", "okay",
	"old", "olive", "olympic", "omit", "once", "one", "onion", "online",
	"only", "open", "opera", "opinion", "oppose", "option", "orange", "orbit",
	"orchard", "order", "ordinary", "organ", "orient", "original", "orphan", "oscar",
	"other", "otter", "ouch", "ought", "ounce", "our", "ourself", "out",
	"outdoor", "outer", "output", "outside", "outstanding", "oval", "oven", "over",
	"own", "owner", "ox", "oxygen", "oyster", "ozone", "pact", "paddle",
	"page", "paid", "paint", "pair", "palace", "palm", "panda", "panel",
	"panic", "panther", "paper", "parade", "parent", "park", "parrot", "party",
	"pass", "patch", "path", "patient", "patrol", "pattern", "pause", "pave",
	"payment", "peace", "peach", "peak", "peanut", "pear", "peasant", "pelican",
	"pen", "penalty", "pencil", "people", "pepper", "perfect", "permit", "person",
	"pet", "phone", "photo", "phrase", "physical", "piano", "picnic", "picture",
	"piece", "pig", "pigeon", "pill", "pilot", "pink", "pioneer", "pipe",
	"pistol", "pitch", "pizza", "place", "plan", "planet", "plant", "plastic",
	"plate", "play", "playground", "pleasant", "please", "pledge", "plenty", "plot",
	"plug", "plunge", "poem", "poet", "point", "polar", "pole", "police",
	"pond", "pony", "pool", "poor", "popular", "portion", "position", "possible",
	"post", "potato", "pottery", "poverty", "powder", "power", "practice", "praise",
	"predict", "prefer", "prepare", "present", "pretty", "prevent", "price", "pride",
	"primary", "print", "priority", "prison", "private", "prize", "problem", "process",
	"produce", "profit", "program", "project", "promote", "proof", "property", "prosper",
	"protect", "proud", "provide", "public", "pudding", "pull", "pulp", "pulse",
	"pumpkin", "punch", "pupil", "puppy", "purchase", "purity", "purpose", "purse",
	"push", "put", "puzzle", "pyramid", "quality", "quantum", "quarter", "question",
	"quick", "quiet", "quilt", "quit", "quiz", "quote", "rabbit", "raccoon",
	"race", "rack", "radar", "radio", "rail", "rain", "raise", "rally",
	"ramp", "ranch", "random", "range", "rapid", "rare", "rate", "rather",
	"raven", "raw", "razor", "ready", "real", "reason", "rebel", "rebuild",
	"recall", "receive", "recipe", "record", "recover", "recycle", "red", "reduce",
	"reef", "refer", "refuse", "region", "regret", "regular", "reject", "relax",
	"release", "relief", "relieve", "relish", "remain", "remember", "remind", "remove",
	"render", "renew", "rent", "reopen", "repair", "repeat", "replace", "reply",
	"report", "require", "rescue", "resemble", "resist", "resource", "respond", "result",
	"retire", "retreat", "return", "reunion", "reveal", "review", "reward", "rhythm",
	"rib", "ribbon", "rice", "rich", "ride", "ridge", "rifle", "right",
	"rigid", "ring", "riot", "rip", "ripe", "rise", "risk", "rival",
	"river", "road", "roast", "robot", "robust", "rocket", "rocky", "rod",
	"roll", "roman", "romance", "roof", "rookie", "room", "root", "rope",
	"rose", "rotate", "rough", "round", "route", "rover", "row", "royal",
	"rub", "rubber", "rude", "rug", "rule", "run", "runway", "rural",
	"rush", "rust", "ruthless", "sad", "saddle", "sadness", "safe", "sail",
	"salad", "salmon", "salon", "salt", "salute", "same", "sample", "sand",
	"satisfy", "satoshi", "sauce", "sausage", "save", "say", "scale", "scan",
	"scare", "scatter", "scene", "scheme", "school", "science", "scissors", "scorpion",
	"scout", "scrap", "screen", "script", "scrub", "sea", "search", "season",
	"seat", "second", "secret", "section", "security", "seed", "seek", "segment",
	"select", "sell", "seminar", "senior", "sense", "sentence", "series", "serious",
	"servant", "serve", "service", "session", "set", "setting", "setup", "seven",
	"shadow", "shaft", "shallow", "share", "shed", "shell", "sheriff", "shield",
	"shift", "shine", "ship", "shiver", "shock", "shoe", "shoot", "shop",
	"short", "shoulder", "shove", "shovel", "show", "shrimp", "shrug", "shuffle",
	"shy", "sibling", "sick", "side", "siege", "sight", "sign", "silent",
	"silk", "silly", "silver", "similar", "simple", "since", "sing", "siren",
	"sister", "sit", "situation", "six", "size", "skate", "sketch", "ski",
	"skill", "skin", "skirt", "skull", "sky", "slab", "slam", "sleep",
	"slice", "slide", "slight", "slim", "slogan", "slot", "slow", "slush",
	"small", "smart", "smile", "smoke", "smooth", "snack", "snake", "snap",
	"sniff", "snow", "soap", "soccer", "social", "sock", "soda", "soft",
	"solar", "soldier", "solid", "solution", "solve", "someone", "song", "soon",
	"sorry", "sort", "soul", "sound", "soup", "source", "south", "space",
	"spare", "spatial", "spawn", "speak", "special", "speed", "spell", "spend",
	"sphere", "spice", "spider", "spike", "spin", "spirit", "split", "spoil",
	"sponsor", "spoon", "sport", "spot", "spray", "spread", "spring", "spy",
	"square", "squeeze", "squirrel", "stable", "stadium", "staff", "stage", "stain",
	"stair", "stake", "stale", "stalk", "stall", "stamp", "stand", "start",
	"state", "stay", "steak", "steel", "stem", "step", "stere", "stick",
	"still", "sting", "stir", "stock", "stomach", "stone", "stool", "story",
	"stove", "strategy", "street", "strike", "string", "strip", "stroke", "struggle",
	"student", "stuff", "stumble", "style", "subject", "submit", "subway", "success",
	"such", "sudden", "suffer", "sugar", "suggest", "suit", "summer", "sun",
	"sunny", "sunset", "super", "supply", "support", "supreme", "sure", "surface",
	"surge", "surprise", "surround", "survey", "suspect", "sustain", "swallow", "swamp",
	"swap", "swarm", "swear", "sweet", "swift", "swim", "swing", "switch",
	"sword", "symbol", "symptom", "syrup", "system", "table", "tackle", "tag",
	"tail", "talent", "talk", "tank", "tape", "target", "task", "taste",
	"tattoo", "taxi", "teach", "team", "tell", "ten", "tenant", "tennis",
	"tent", "term", "test", "text", "thank", "that", "theme", "then",
	"theory", "there", "these", "thick", "thin", "thing", "think", "third",
	"thirsty", "thirteen", "thirty", "this", "thong", "thorn", "those", "thought",
	"thousand", "thread", "threat", "three", "thrive", "throw", "thumb", "thunder",
	"thursday", "thus", "tide", "tiger", "tight", "tilt", "timber", "time",
	"tiny", "tip", "tired", "tissue", "title", "toast", "tobacco", "today",
	"toddler", "toe", "together", "toilet", "token", "tomato", "tomorrow", "tone",
	"tongue", "tonight", "tool", "tooth", "top", "topic", "topple", "torch",
	"tornado", "tortoise", "toss", "total", "tourist", "toward", "tower", "town",
	"toy", "track", "trade", "traffic", "tragic", "train", "transfer", "trap",
	"trash", "travel", "tray", "treat", "tree", "trend", "trial", "tribe",
	"trick", "trigger", "trim", "trip", "trophy", "trouble", "truck", "true",
	"truly", "trumpet", "trust", "truth", "try", "tube", "tuesday", "tuff",
	"tumble", "tuna", "tunnel", "turbo", "turf", "turn", "turtle", "twelve",
	"twenty", "twice", "twin", "twist", "two", "type", "typical", "ugly",
	"umbrella", "unable", "unaware", "uncle", "uncover", "under", "undo", "unfair",
	"unfold", "unhappy", "uniform", "unique", "unit", "universe", "unknown", "unlock",
	"unlucky", "unmask", "unnecessary", "unpack", "unreal", "unrest", "unsafe", "until",
	"unusual", "unveil", "unwanted", "unwelcome", "unwell", "unwind", "unwrap", "up",
	"update", "upgrade", "uphold", "upon", "upper", "upset", "urban", "urge",
	"urgent", "usage", "use", "used", "useful", "useless", "user", "usual",
	"utility", "vacant", "vacuum", "vague", "valid", "valley", "valor", "valuable",
	"value", "valve", "van", "vanish", "vapor", "variable", "variety", "various",
	"vast", "vault", "vehicle", "velocity", "vendor", "venture", "venue", "verb",
	"verify", "version", "versus", "vertical", "very", "vessel", "veteran", "viable",
	"vibrant", "vicious", "victory", "video", "view", "village", "vintage", "violate",
	"violence", "violent", "violet", "violin", "virtual", "virtue", "virus", "visa",
	"visit", "visual", "vital", "vivid", "vocal", "voice", "void", "volcano",
	"volume", "volunteer", "vomit", "vote", "voucher", "vow", "voyage", "vulnerable",
	"wad", "wage", "wagon", "wait", "wake", "walk", "wall", "wallet",
	"wander", "want", "war", "ward", "warm", "warn", "warrant", "warrior",
	"wash", "wasp", "waste", "water", "wave", "way", "we", "weak",
	"wealth", "weapon", "wear", "weasel", "weather", "weave", "web", "wedding",
	"wednesday", "weed", "week", "weird", "welcome", "weld", "well", "west",
	"wet", "whale", "what", "wheat", "wheel", "when", "where", "whip",
	"whisper", "wide", "width", "wife", "wild", "will", "win", "window",
	"wine", "wing", "wink", "winner", "winter", "wire", "wisdom", "wise",
	"wish", "witness", "wizard", "wobble", "wolf", "woman", "wonder", "wood",
	"wool", "word", "work", "world", "worm", "worry", "worth", "would",
	"wound", "woven", "wrap", "wreck", "wrestle", "wrist", "write", "wrong",
	"wrote", "yacht", "yak", "yam", "yard", "yarn", "yawn", "year",
	"yellow", "you", "young", "youth", "yummy", "zap", "zebra", "zero",
	"zone", "zoo", "zoom",
}

// actionWords are personal and possessive words, then imperative verbs, then
// quality adjectives. The order drives tier-1 ranking.
var actionWords = []string{
	// personal and possessive
	"my", "mine", "your", "yours", "our", "ours", "their", "theirs",
	"his", "her", "hers", "the", "a", "an", "this", "that",
	"these", "those",
	// verbs
	"get", "go", "try", "use", "buy", "find", "search", "look",
	"see", "view", "take", "make", "create", "build", "start", "begin",
	"join", "sign", "register", "call", "contact", "connect", "link", "share",
	"save", "store", "keep", "hold",
	// quality
	"best", "top", "prime", "elite", "super", "ultra", "mega", "max",
	"pro", "plus", "premium", "gold", "platinum", "vip", "deluxe", "luxury",
	"exclusive", "select", "new", "next", "fresh", "modern", "smart", "fast",
	"quick", "easy", "simple", "now", "today", "here", "online", "digital",
	"tech", "cloud", "ai", "smart",
}

// curatedPrefixes and curatedSuffixes are hand-picked single affixes applied
// after the cross-product tiers.
var curatedPrefixes = []string{
	"my", "mine", "your", "yours", "our", "ours", "their", "theirs",
	"his", "her", "hers", "the", "this", "that",
	"get", "go", "try", "use", "buy", "find", "search", "look",
	"see", "view", "take", "make", "create", "build", "start", "join",
	"sign", "register", "call", "contact",
	"best", "top", "prime", "elite", "super", "ultra", "mega", "max",
	"premium", "gold", "platinum", "vip", "new", "next", "fresh", "modern",
	"smart", "fast", "quick", "easy", "simple",
}

var curatedSuffixes = []string{
	"now", "pro", "plus", "hub", "co", "app", "net", "io",
	"tech", "ai", "cloud", "space", "zone", "best", "top", "prime",
	"elite", "super", "ultra", "mega", "max", "go", "try", "use",
	"buy", "online", "digital", "smart", "fast", "new", "next", "premium",
	"gold",
}

// popularBrandWords top up the result as both prefix and suffix.
var popularBrandWords = []string{
	"pro", "plus", "prime", "elite", "max", "ultra", "super", "mega",
	"shield", "guard", "safe", "secure", "trust", "care", "plan", "nest",
	"hub", "base", "zone", "spot", "box", "lab", "works", "co",
	"solutions",
}

// BrandWords returns a copy of the brand vocabulary in priority order.
func BrandWords() []string {
	return append([]string(nil), brandWords...)
}

// ActionWords returns a copy of the action vocabulary in priority order.
func ActionWords() []string {
	return append([]string(nil), actionWords...)
}
