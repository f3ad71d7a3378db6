package descriptor

// PoseFlatLay - 모델 없이 바닥에 펼친 연출 (가먼트 base 프롬프트 분기용)
const PoseFlatLay = "flat_lay_simple"

const poseStanding = "standing pose,"

// Poses - 모델 포즈 (설명은 "in a ... with a natural expression" 문장에 그대로 들어감)
var Poses = &Table{
	Name:    "pose",
	Default: poseStanding,
	Entries: []Entry{
		{ID: PoseFlatLay, Description: ""},
		{ID: "standing", Description: poseStanding},
		{ID: "closeup_casual", Description: "a casual, close-up shot from the chest up against a clean, neutral studio background, focusing clearly on the garment,"},
		{ID: "professional_office_standing", Description: poseStanding},
		{ID: "urban_professional_walking", Description: poseStanding},
		{ID: "art_gallery_viewing", Description: poseStanding},
		{ID: "creative_studio_loft", Description: poseStanding},
		{ID: "coffee_shop_thoughtful", Description: poseStanding},
		{ID: "mountain_summit_view", Description: poseStanding},
		{ID: "beach_sunset_walk", Description: poseStanding},
		{ID: "forest_trail_hike", Description: poseStanding},
		{ID: "rooftop_city_dusk", Description: poseStanding},
		{ID: "neon_urban_night", Description: poseStanding},
		{ID: "geometric_abstract_background", Description: poseStanding},
		{ID: "sitting", Description: "sitting on a stool,"},
		{ID: "sitting_floor_cozy", Description: "sitting cross-legged on the floor in a cozy, well-lit setting, smiling warmly towards the camera,"},
		{ID: "sitting_hand_hip", Description: "a relaxed sitting pose on a neutral surface, with one hand casually resting on the hip,"},
		{ID: "sitting_on_counter", Description: "sitting cross-legged on a clean kitchen counter in a modern, well-lit kitchen, looking relaxed and happy,"},
		{ID: "recumbent", Description: "recumbent pose (lying down gracefully on a neutral surface),"},
		{ID: "smiling_glasses", Description: "standing pose, smiling warmly, wearing stylish dark glasses,"},
		{ID: "back", Description: "standing with their back to the camera,"},
		{ID: "drinking_tea", Description: "sitting comfortably and holding a cup of tea, looking relaxed,"},
		{ID: "jumping", Description: "mid-air jumping pose, expressive and energetic,"},
		{ID: "dancing", Description: "dynamic dancing pose, capturing movement,"},
		{ID: "meditating", Description: "sitting in a calm, cross-legged meditation pose,"},
		{ID: "heroic", Description: "powerful heroic pose, like a superhero,"},
		{ID: "action", Description: "dynamic action pose, as if in motion,"},
		{ID: "yoga", Description: "serene yoga pose (e.g., tree pose),"},
		{ID: "casual_lean", Description: "casually leaning against a wall,"},
		{ID: "walking_street", Description: "dynamic walking pose on a blurred city street,"},
		{ID: "laughing", Description: "joyful laughing pose, looking natural and happy,"},
		{ID: "arms_crossed", Description: "standing with arms crossed confidently,"},
		{ID: "thinking", Description: "pensive pose, hand to chin as if in thought,"},
		{ID: "hands_in_pockets", Description: "casual standing pose with hands in pockets,"},
		{ID: "leaning_against_railing", Description: "casually leaning against a modern metal or glass railing on a balcony with a blurred city or nature background, looking relaxed,"},
		{ID: "looking_over_shoulder", Description: "standing and looking back over their shoulder at the camera with a slight smile,"},
		{ID: "running_action_shot", Description: "a dynamic, frozen-motion action shot as if the model is jogging or running, with a blurred background suggesting movement,"},
		{ID: "adjusting_cuff", Description: "a close-up shot focusing on the model's torso and arm as they subtly adjust the cuff of their sleeve, highlighting the garment details,"},
		{ID: "hands_on_hips_confident", Description: "a confident power pose, standing with both hands placed firmly on the hips, looking directly at the camera,"},
		{ID: "celebrating_excited", Description: "a joyful, energetic pose as if celebrating, with arms possibly raised and a happy, excited expression,"},
	},
}

// Audiences - 가먼트 모델 페르소나
var Audiences = &Table{
	Name:    "audience",
	Default: "a woman with a casual style",
	Entries: []Entry{
		// 여성 모델
		{ID: "teenager_female_skater", Description: "a female teenager with a cool skater style"},
		{ID: "woman_20s_barista", Description: "a young woman with a friendly barista style, perhaps with an apron"},
		{ID: "woman_20s_urban_fashion", Description: "a young woman in trendy, stylish urban fashion"},
		{ID: "woman_20s_athletic", Description: "a woman with an athletic build, in sporty-casual clothing"},
		{ID: "woman_30s_casual", Description: "a woman with a relaxed and casual style"},
		{ID: "woman_30s_yogi", Description: "a woman in comfortable activewear, with a calm and serene yogi vibe"},
		{ID: "woman_30s_plus_size_confident", Description: "a confident and happy plus-size woman with a stylish, modern look"},
		{ID: "woman_40s_professional", Description: "a woman with a sharp, professional appearance"},
		{ID: "middle_aged_woman_artist", Description: "a middle-aged woman with an artistic and creative style"},
		{ID: "woman_40s_edgy_tattoos", Description: "a stylish middle-aged woman with visible artistic tattoos on her arms"},
		{ID: "woman_50s_elegant", Description: "an elegant and sophisticated woman"},
		{ID: "woman_50s_traveler", Description: "an energetic, mature woman dressed for travel, perhaps with a camera"},
		{ID: "elderly_woman_gardener", Description: "an elderly woman with a warm smile, dressed for gardening"},
		{ID: "elderly_woman_baker", Description: "a kind, grandmotherly woman in an apron, looking like she just finished baking"},

		// 남성 모델
		{ID: "teenager_male_gamer", Description: "a male teenager with a gamer style, perhaps wearing headphones around his neck"},
		{ID: "man_20s_student", Description: "a young man with a student style"},
		{ID: "young_man_musician", Description: "a young man with a creative, musician-like appearance"},
		{ID: "man_30s_creative", Description: "a creative professional man"},
		{ID: "man_40s_business", Description: "a man in business-casual style"},
		{ID: "man_50s_distinguished", Description: "a distinguished-looking man"},
	},
}

var FrameModels = &Table{
	Name:    "frameModel",
	Default: "a person",
	Entries: []Entry{
		{ID: "elegant_woman_street", Description: "an elegant woman in elegant clothing, standing on a picturesque European-style street and holding the frame"},
		{ID: "art_curator_gallery", Description: "an art curator with a professional appearance in a minimalist gallery, presenting the frame"},
		{ID: "craftsman_workshop", Description: "a craftsman in a woodworking workshop, showcasing the frame"},
		{ID: "man_modern_loft", Description: "a stylish man in a modern, industrial-style loft apartment, hanging the frame on an exposed brick wall"},
		{ID: "woman_cozy_living_room", Description: "a woman in a cozy, hygge-style living room with a fireplace, placing the frame on a wooden mantle"},
		{ID: "couple_art_store", Description: "a happy young couple in a bright, well-lit art supply store, holding up the frame together"},
	},
}

var MugModels = &Table{
	Name:    "mugModel",
	Default: "a person",
	Entries: []Entry{
		{ID: "woman_cafe", Description: "a woman sitting in a picturesque European-style cafe, smiling while wearing elegant clothing and holding the mug"},
		{ID: "man_office", Description: "a man in a modern office, holding the mug during a break"},
		{ID: "person_cozy_home", Description: "a person in a cozy, hygge-style living room, relaxing with the mug"},
	},
}

var SipperGlassModels = &Table{
	Name:    "sipperGlassModel",
	Default: "a person",
	Entries: []Entry{
		{ID: "woman_cafe_elegant", Description: "a young woman sitting in a cafe on a European or historical street, smiling and wearing elegant clothes, holding the sipper glass with a beverage inside"},
		{ID: "man_modern_kitchen", Description: "a man in a bright, modern kitchen, holding the sipper glass with a beverage inside"},
		{ID: "person_outdoor_patio", Description: "a person relaxing on a sunny outdoor patio, holding the sipper glass with a beverage inside"},
	},
}

var TumblerModels = &Table{
	Name:    "tumblerModel",
	Default: "a person",
	Entries: []Entry{
		{ID: "person_gym", Description: "an athletic person at a modern gym, holding the tumbler"},
		{ID: "hiker_trail", Description: "a hiker resting on a scenic mountain trail, holding the tumbler"},
		{ID: "student_desk", Description: "a student studying at a desk in a well-lit room, with the tumbler nearby"},
	},
}

var HalloweenTumblerSettings = &Table{
	Name:    "halloweenTumblerSetting",
	Default: "a festive halloween scene",
	Entries: []Entry{
		{ID: "spooky_table", Description: "a festive Halloween scene on a wooden table, with out-of-focus pumpkins, candy corn, and spooky string lights in the background"},
		{ID: "haunted_house", Description: "a moody, atmospheric setting in front of a slightly blurred, spooky haunted house at dusk"},
		{ID: "witchs_cauldron", Description: "a magical setting next to a bubbling witch's cauldron with glowing green smoke and potion ingredients scattered around"},
		{ID: "autumn_porch", Description: "a cozy autumn scene on a porch, surrounded by fall leaves, mums, and rustic decorations"},
	},
}

var TumblerTrioSettings = &Table{
	Name:    "tumblerTrioSetting",
	Default: "a clean, well-lit product setting",
	Entries: []Entry{
		{ID: "marble_countertop", Description: "a clean, bright white marble countertop with soft, out-of-focus kitchen background elements"},
		{ID: "light_wood", Description: "a light-colored wooden table with a soft, warm, and slightly blurred background"},
		{ID: "minimalist_shelf", Description: "a simple, floating minimalist shelf against a plain, neutral-colored wall"},
	},
}

var PhoneCaseModels = &Table{
	Name:    "phoneCaseModel",
	Default: "a person holding a phone",
	Entries: []Entry{
		{ID: "person_holding", Description: "a person with natural-looking hands holding a modern smartphone, showcasing the case"},
		{ID: "on_desk", Description: "a modern smartphone in a case, placed on a stylish desk next to a laptop and a coffee mug, with a blurred background"},
		{ID: "flat_lay", Description: "a flat lay photo of a modern smartphone in a case on a clean, minimalist background"},
	},
}

var StickerSettings = &Table{
	Name:    "stickerSetting",
	Default: "a sticker on a surface",
	Entries: []Entry{
		{ID: "on_laptop", Description: "a sticker placed on the corner of a modern laptop with a blurred background"},
		{ID: "on_water_bottle", Description: "a sticker placed on a sleek, modern water bottle"},
		{ID: "on_notebook", Description: "a sticker placed on the cover of a minimalist notebook or journal"},
	},
}

var PosterSettings = &Table{
	Name:    "posterSetting",
	Default: "a poster on a wall",
	Entries: []Entry{
		{ID: "framed_on_wall", Description: "a poster in a simple, modern frame hanging on a well-lit wall in a stylish room"},
		{ID: "person_holding", Description: "a person with natural-looking hands holding up a poster, with a blurred, neutral background"},
		{ID: "taped_on_brick_wall", Description: "a poster casually taped to an urban-style exposed brick wall"},
	},
}

var WalletModels = &Table{
	Name:    "walletModel",
	Default: "a person holding a wallet",
	Entries: []Entry{
		{ID: "person_holding", Description: "a person with well-manicured hands holding a modern leather wallet, showcasing the front"},
		{ID: "flat_lay_desk", Description: "a flat lay photo of a modern leather wallet on a stylish desk next to a pen and notebook, with a blurred background"},
		{ID: "in_pocket", Description: "a modern leather wallet peeking out of the back pocket of a pair of stylish jeans"},
	},
}

var CapModels = &Table{
	Name:    "capModel",
	Default: "a person wearing a cap",
	Entries: []Entry{
		{ID: "person_forwards", Description: "a lifelike model wearing the cap forwards"},
		{ID: "person_backwards", Description: "a lifelike model wearing the cap backwards"},
		{ID: "flat_lay", Description: "a flat lay photo of the cap on a clean, minimalist surface"},
	},
}

var PillowSettings = &Table{
	Name:    "pillowSetting",
	Default: "a cozy home setting",
	Entries: []Entry{
		{ID: "on_sofa", Description: "a stylish, modern sofa in a well-lit living room"},
		{ID: "on_bed", Description: "a neatly made bed with plush duvets in a cozy bedroom"},
		{ID: "on_armchair", Description: "a comfortable armchair in a reading nook"},
	},
}

// FlatLayStyles - 설명이 마침표로 끝남 (base 프롬프트에 그대로 삽입)
var FlatLayStyles = &Table{
	Name:    "flatLayStyle",
	Default: "a clean, minimalist flat lay",
	Entries: []Entry{
		{ID: "minimalist_neutral", Description: "a clean, minimalist flat lay on a neutral background (like light gray concrete or a white wooden surface), with simple, elegant accessories like a pair of sunglasses, a watch, and a small plant."},
		{ID: "rustic_outdoors", Description: "a rustic, outdoors-themed flat lay on a dark wood or slate background, surrounded by items like hiking boots, a compass, a leather-bound journal, and some pine cones."},
		{ID: "urban_streetwear", Description: "an urban streetwear flat lay on a concrete or asphalt background, accompanied by accessories like trendy sneakers, a beanie, headphones, and a skateboard deck."},
		{ID: "cozy_autumn", Description: "a cozy autumn-themed flat lay on a warm-toned wooden surface, featuring items like a knitted scarf, a steaming mug of coffee, fall leaves, and a book."},
		{ID: "beach_vacation", Description: "a bright, beach vacation-themed flat lay on a sandy background, with accessories like sandals, a straw hat, seashells, and a pair of sunglasses."},
		{ID: "tech_office", Description: "a modern tech office flat lay on a clean desk mat, featuring a sleek wireless keyboard, a minimalist mouse, a tablet, and a cup of black coffee."},
		{ID: "feminine_elegance", Description: "an elegant, feminine flat lay on a marble surface, with delicate gold jewelry, a silk scarf, a high-fashion magazine, and a single peony."},
		{ID: "dark_academia", Description: `a "dark academia" themed flat lay on a dark mahogany wood surface, with vintage hardcover books, a fountain pen, a magnifying glass, and a pair of classic spectacles.`},
		{ID: "boho_chic", Description: `a "boho chic" flat lay on a woven rattan placemat, featuring dried pampas grass, healing crystals, a scented candle, and a piece of macrame.`},
		{ID: "adventure_travel", Description: "an adventure travel themed flat lay on a vintage world map, with a leather passport holder, a brass compass, a classic film camera, and a pair of hiking boots."},
	},
}

var PuzzleSettings = &Table{
	Name:    "puzzleSetting",
	Default: "a product setting",
	Entries: []Entry{
		{ID: "on_wooden_table", Description: "a blank jigsaw puzzle on a rustic wooden table with soft, warm lighting and a blurred background"},
		{ID: "family_playing", Description: "the hands of a family gathered around a table, about to start working on the blank jigsaw puzzle, with a cozy home background"},
		{ID: "flat_lay_minimalist", Description: "a flat lay of the blank jigsaw puzzle on a clean, minimalist neutral-colored surface"},
	},
}
